// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/rymnc/fuel-gossiper/configuration"
	"github.com/rymnc/fuel-gossiper/nodeconfig"
)

// basic defaults (relative log directory is from the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "gossiper.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
	defaultLogLevel     = "info"
)

// LoggingType - the logger section
type LoggingType struct {
	Directory string            `gluamapper:"directory" json:"directory"`
	File      string            `gluamapper:"file" json:"file"`
	Size      int               `gluamapper:"size" json:"size"`
	Count     int               `gluamapper:"count" json:"count"`
	Console   bool              `gluamapper:"console" json:"console"`
	Levels    map[string]string `gluamapper:"levels" json:"levels"`
}

// NodeType - the node section, durations are integers
type NodeType struct {
	NetworkName               string  `gluamapper:"network_name" json:"network_name"`
	MaxBlockSize              int     `gluamapper:"max_block_size" json:"max_block_size"`
	MaxTransactionsPerRequest int     `gluamapper:"max_transactions_per_request" json:"max_transactions_per_request"`
	MaxHeadersPerRequest      int     `gluamapper:"max_headers_per_request" json:"max_headers_per_request"`
	MaxConnectionsPerPeer     int     `gluamapper:"max_connections_per_peer" json:"max_connections_per_peer"`
	MaxPeerConnections        int     `gluamapper:"max_peer_connections" json:"max_peer_connections"`
	ConnectionKeepAlive       int     `gluamapper:"connection_keep_alive" json:"connection_keep_alive"` // seconds
	HeartbeatInterval         int     `gluamapper:"heartbeat_interval" json:"heartbeat_interval"`       // milliseconds
	ListenPort                int     `gluamapper:"listen_port" json:"listen_port"`
	ReservedNodesOnly         bool    `gluamapper:"reserved_nodes_only" json:"reserved_nodes_only"`
	DiscoveryEnabled          bool    `gluamapper:"discovery_enabled" json:"discovery_enabled"`
	PublishRate               float64 `gluamapper:"publish_rate" json:"publish_rate"`
	PublishBurst              int     `gluamapper:"publish_burst" json:"publish_burst"`
	SubmissionQueueSize       int     `gluamapper:"submission_queue_size" json:"submission_queue_size"`
}

// Configuration - the complete file
type Configuration struct {
	PidFile string      `gluamapper:"pidfile" json:"pidfile"`
	Logging LoggingType `gluamapper:"logging" json:"logging"`
	Node    NodeType    `gluamapper:"node" json:"node"`
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults with paths relative to the
// current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {
	baseDirectory := ""

	if "" != configurationFileName {
		name, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		configurationFileName = name
		baseDirectory, _ = filepath.Split(configurationFileName)
	} else {
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		baseDirectory = wd
	}

	p := nodeconfig.DefaultParameters()
	options := &Configuration{
		PidFile: "", // no PidFile by default

		Logging: LoggingType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   true,
			Levels: map[string]string{
				logger.DefaultTag: defaultLogLevel,
			},
		},

		Node: NodeType{
			NetworkName:               p.NetworkName,
			MaxBlockSize:              p.MaxBlockSize,
			MaxTransactionsPerRequest: p.MaxTransactionsPerRequest,
			MaxHeadersPerRequest:      p.MaxHeadersPerRequest,
			MaxConnectionsPerPeer:     p.MaxConnectionsPerPeer,
			MaxPeerConnections:        p.MaxPeerConnections,
			ConnectionKeepAlive:       int(p.ConnectionKeepAlive / time.Second),
			HeartbeatInterval:         int(p.HeartbeatInterval / time.Millisecond),
			ListenPort:                p.ListenPort,
			ReservedNodesOnly:         p.ReservedNodesOnly,
			DiscoveryEnabled:          p.DiscoveryEnabled,
			PublishRate:               p.PublishRate,
			PublishBurst:              p.PublishBurst,
			SubmissionQueueSize:       p.SubmissionQueueSize,
		},
	}

	if "" != configurationFileName {
		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	// force relevant items to be absolute paths
	options.Logging.Directory = absolute(baseDirectory, options.Logging.Directory)
	if "" != options.PidFile {
		options.PidFile = absolute(baseDirectory, options.PidFile)
	}

	if err := options.Parameters().Validate(); nil != err {
		return nil, err
	}
	return options, nil
}

// Parameters - the node section converted for the assembler
func (c *Configuration) Parameters() nodeconfig.Parameters {
	n := c.Node
	return nodeconfig.Parameters{
		NetworkName:               n.NetworkName,
		MaxBlockSize:              n.MaxBlockSize,
		MaxTransactionsPerRequest: n.MaxTransactionsPerRequest,
		MaxHeadersPerRequest:      n.MaxHeadersPerRequest,
		MaxConnectionsPerPeer:     n.MaxConnectionsPerPeer,
		MaxPeerConnections:        n.MaxPeerConnections,
		ConnectionKeepAlive:       time.Duration(n.ConnectionKeepAlive) * time.Second,
		HeartbeatInterval:         time.Duration(n.HeartbeatInterval) * time.Millisecond,
		ListenPort:                n.ListenPort,
		ReservedNodesOnly:         n.ReservedNodesOnly,
		DiscoveryEnabled:          n.DiscoveryEnabled,
		PublishRate:               n.PublishRate,
		PublishBurst:              n.PublishBurst,
		SubmissionQueueSize:       n.SubmissionQueueSize,
	}
}

// LoggerConfiguration - the logging section for logger.Initialise
func (c *Configuration) LoggerConfiguration() logger.Configuration {
	l := c.Logging
	levels := make(map[string]string, len(l.Levels))
	for tag, level := range l.Levels {
		levels[tag] = level
	}
	return logger.Configuration{
		Directory: l.Directory,
		File:      l.File,
		Size:      l.Size,
		Count:     l.Count,
		Console:   l.Console,
		Levels:    levels,
	}
}

func absolute(base string, path string) string {
	path = filepath.Clean(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
