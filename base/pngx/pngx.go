// Copyright (c) 2024, The Palscope Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pngx reads and writes the iCCP ancillary chunk of PNG
// files, so that a colour profile attached to an input image can be
// carried into the output unchanged.
package pngx

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// ErrNotPNG is returned for data without a PNG signature.
var ErrNotPNG = errors.New("pngx: not a png file")

// ErrNoProfile is returned when a PNG has no iCCP chunk.
var ErrNoProfile = errors.New("pngx: no icc profile")

type chunk struct {
	typ  string
	data []byte
}

func readChunks(data []byte) ([]chunk, error) {
	if len(data) < len(pngSignature) || !bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return nil, ErrNotPNG
	}
	var chunks []chunk
	rest := data[len(pngSignature):]
	for len(rest) >= 12 {
		n := binary.BigEndian.Uint32(rest[:4])
		if len(rest) < int(12+n) {
			return nil, fmt.Errorf("pngx: truncated chunk")
		}
		chunks = append(chunks, chunk{
			typ:  string(rest[4:8]),
			data: rest[8 : 8+n],
		})
		rest = rest[12+n:]
	}
	return chunks, nil
}

func writeChunk(w *bytes.Buffer, c chunk) {
	var head [8]byte
	binary.BigEndian.PutUint32(head[:4], uint32(len(c.data)))
	copy(head[4:], c.typ)
	w.Write(head[:])
	w.Write(c.data)
	crc := crc32.NewIEEE()
	crc.Write(head[4:])
	crc.Write(c.data)
	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], crc.Sum32())
	w.Write(tail[:])
}

// Profile extracts the ICC profile embedded in the PNG data, if any.
func Profile(data []byte) ([]byte, error) {
	chunks, err := readChunks(data)
	if err != nil {
		return nil, err
	}
	for _, c := range chunks {
		if c.typ != "iCCP" {
			continue
		}
		// profile name, nul, compression method, zlib stream
		i := bytes.IndexByte(c.data, 0)
		if i < 0 || i+2 > len(c.data) || c.data[i+1] != 0 {
			return nil, fmt.Errorf("pngx: malformed iCCP chunk")
		}
		zr, err := zlib.NewReader(bytes.NewReader(c.data[i+2:]))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	}
	return nil, ErrNoProfile
}

// WithProfile returns the PNG data with the given ICC profile spliced
// in as an iCCP chunk directly after the header chunk, replacing any
// existing profile.
func WithProfile(data, profile []byte) ([]byte, error) {
	chunks, err := readChunks(data)
	if err != nil {
		return nil, err
	}
	var payload bytes.Buffer
	payload.WriteString("ICC profile")
	payload.WriteByte(0)
	payload.WriteByte(0) // zlib
	zw := zlib.NewWriter(&payload)
	if _, err := zw.Write(profile); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	iccp := chunk{typ: "iCCP", data: payload.Bytes()}

	var out bytes.Buffer
	out.Write(pngSignature)
	placed := false
	for _, c := range chunks {
		if c.typ == "iCCP" {
			continue
		}
		writeChunk(&out, c)
		if c.typ == "IHDR" && !placed {
			writeChunk(&out, iccp)
			placed = true
		}
	}
	if !placed {
		return nil, fmt.Errorf("pngx: no IHDR chunk")
	}
	return out.Bytes(), nil
}
