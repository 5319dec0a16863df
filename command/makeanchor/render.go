// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	peerlib "github.com/libp2p/go-libp2p-core/peer"
	ma "github.com/multiformats/go-multiaddr"

	"github.com/rymnc/fuel-gossiper/anchor"
)

const licenseHeader = `// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.`

const bytesPerLine = 8

var genesisTemplate = template.Must(template.New("genesis").Parse(licenseHeader + `

// Code generated by makeanchor from {{.Source}}. DO NOT EDIT.

package {{.Package}}

var genesisConfig = TrustAnchor{
{{- range .Fields}}
	{{.Name}}: Digest{
{{- range .Lines}}
		{{.}}
{{- end}}
	},
{{- end}}
}

// GenesisConfig - the mainnet genesis commitments
func GenesisConfig() TrustAnchor {
	return genesisConfig
}
`))

var reservedTemplate = template.Must(template.New("reserved").Parse(licenseHeader + `

// Code generated by makeanchor from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	ma "github.com/multiformats/go-multiaddr"
)

// binary multiaddrs
var reservedNodes = [...]string{
{{- range .Nodes}}
	// {{.Comment}}
	"{{.Escaped}}",
{{- end}}
}

// ReservedNodes - the mainnet bootstrap peers, a fresh slice on each call
func ReservedNodes() []ma.Multiaddr {
	addrs := make([]ma.Multiaddr, len(reservedNodes))
	for i, b := range reservedNodes {
		addrs[i] = ma.Cast([]byte(b))
	}
	return addrs
}
`))

type digestField struct {
	Name  string
	Lines []string
}

type reservedNode struct {
	Comment string
	Escaped string
}

func renderGenesis(packageName string, sourceName string, a anchor.TrustAnchor) ([]byte, error) {
	data := struct {
		Source  string
		Package string
		Fields  []digestField
	}{
		Source:  sourceName,
		Package: packageName,
		Fields: []digestField{
			{"ChainConfigHash", byteLines(a.ChainConfigHash[:])},
			{"CoinsRoot", byteLines(a.CoinsRoot[:])},
			{"ContractsRoot", byteLines(a.ContractsRoot[:])},
			{"MessagesRoot", byteLines(a.MessagesRoot[:])},
			{"TransactionsRoot", byteLines(a.TransactionsRoot[:])},
		},
	}
	return render(genesisTemplate, data)
}

func renderReserved(packageName string, sourceName string, addrs []ma.Multiaddr) ([]byte, error) {
	nodes := make([]reservedNode, 0, len(addrs))
	for _, addr := range addrs {
		info, err := peerlib.AddrInfoFromP2pAddr(addr)
		if nil != err {
			return nil, err
		}
		comment := peerlib.IDB58Encode(info.ID)
		if 0 != len(info.Addrs) {
			comment = info.Addrs[0].String() + " " + comment
		}
		nodes = append(nodes, reservedNode{
			Comment: comment,
			Escaped: escape(addr.Bytes()),
		})
	}

	data := struct {
		Source  string
		Package string
		Nodes   []reservedNode
	}{
		Source:  sourceName,
		Package: packageName,
		Nodes:   nodes,
	}
	return render(reservedTemplate, data)
}

func render(t *template.Template, data interface{}) ([]byte, error) {
	buffer := bytes.Buffer{}
	if err := t.Execute(&buffer, data); nil != err {
		return nil, err
	}
	return format.Source(buffer.Bytes())
}

// "0x5e, 0x8d, …," in rows of bytesPerLine
func byteLines(b []byte) []string {
	lines := make([]string, 0, (len(b)+bytesPerLine-1)/bytesPerLine)
	for len(b) > 0 {
		n := bytesPerLine
		if n > len(b) {
			n = len(b)
		}
		items := make([]string, n)
		for i, c := range b[:n] {
			items[i] = fmt.Sprintf("0x%02x", c)
		}
		lines = append(lines, strings.Join(items, ", ")+",")
		b = b[n:]
	}
	return lines
}

// every byte as \xNN so the literal is independent of printable runs
func escape(b []byte) string {
	s := strings.Builder{}
	for _, c := range b {
		fmt.Fprintf(&s, "\\x%02x", c)
	}
	return s.String()
}
