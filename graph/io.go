package graph

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the compression algorithm used for index sections.
type CompressionType uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone CompressionType = 0
	// CompressionLZ4 indicates LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD indicates ZSTD block compression (better ratio).
	CompressionZSTD CompressionType = 2
)

const (
	indexMagic   = 0x4752414E // "GRAN"
	indexVersion = 1

	blockHeaderSize = 8
)

var (
	// ErrInvalidMagic indicates the reader is not positioned at an index file.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrInvalidVersion indicates an unsupported index file version.
	ErrInvalidVersion = errors.New("unsupported version")
)

// fileHeader describes the layout of an index file.
//
// Layout: [Magic uint32][Version uint8][Compression uint8][pad uint16]
// [Count uint64][Dim uint32][Degree uint32], followed by two framed blocks
// (dataset vectors, graph adjacency), each [UncompressedSize uint32]
// [CompressedSize uint32][data]. CompressedSize == 0 means stored raw.
type fileHeader struct {
	Compression CompressionType
	Count       uint64
	Dim         uint32
	Degree      uint32
}

const fileHeaderSize = 4 + 1 + 1 + 2 + 8 + 4 + 4

func (h *fileHeader) encode() []byte {
	buf := make([]byte, fileHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:], indexMagic)
	buf[4] = indexVersion
	buf[5] = uint8(h.Compression)
	binary.LittleEndian.PutUint64(buf[8:], h.Count)
	binary.LittleEndian.PutUint32(buf[16:], h.Dim)
	binary.LittleEndian.PutUint32(buf[20:], h.Degree)

	return buf
}

func (h *fileHeader) decode(buf []byte) error {
	if binary.LittleEndian.Uint32(buf[0:]) != indexMagic {
		return ErrInvalidMagic
	}

	if buf[4] != indexVersion {
		return fmt.Errorf("%w: %d", ErrInvalidVersion, buf[4])
	}

	h.Compression = CompressionType(buf[5])
	h.Count = binary.LittleEndian.Uint64(buf[8:])
	h.Dim = binary.LittleEndian.Uint32(buf[16:])
	h.Degree = binary.LittleEndian.Uint32(buf[20:])

	return nil
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}

	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))

	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}

	dec, _ := zstd.NewReader(nil)

	return dec
}

// compressBlock frames and optionally compresses a section.
// Incompressible data (ratio > 0.9) is stored raw.
func compressBlock(data []byte, compression CompressionType) ([]byte, error) {
	var compressed []byte

	switch compression {
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)

		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}

		compressed = buf[:n] // n == 0 means incompressible
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0) // 0 = raw
		copy(result[blockHeaderSize:], data)

		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)

	return result, nil
}

// readBlock reads one framed section from r and decompresses it.
func readBlock(r io.Reader, compression CompressionType) ([]byte, error) {
	var hdr [blockHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}

	uncompressedSize := binary.LittleEndian.Uint32(hdr[0:])
	compressedSize := binary.LittleEndian.Uint32(hdr[4:])

	if compressedSize == 0 {
		data := make([]byte, uncompressedSize)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, err
		}

		return data, nil
	}

	compressed := make([]byte, compressedSize)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, err
	}

	result := make([]byte, uncompressedSize)

	switch compression {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(compressed, result)
		if err != nil {
			return nil, err
		}

		if uint32(n) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}

		return result, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		decoded, err := dec.DecodeAll(compressed, result[:0])
		zstdDecoderPool.Put(dec)

		if err != nil {
			return nil, err
		}

		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}

		return decoded, nil
	default:
		return nil, fmt.Errorf("unknown compression type: %d", compression)
	}
}

// WriteIndex serializes the dataset and its graph to w.
func WriteIndex(w io.Writer, ds *Dataset, g *Graph, compression CompressionType) error {
	if ds.Len() != g.Len() {
		return fmt.Errorf("dataset size %d does not match graph size %d", ds.Len(), g.Len())
	}

	hdr := fileHeader{
		Compression: compression,
		Count:       uint64(ds.Len()),
		Dim:         uint32(ds.Dim()),
		Degree:      uint32(g.Degree()),
	}

	if _, err := w.Write(hdr.encode()); err != nil {
		return err
	}

	vecBytes := make([]byte, len(ds.data)*4)
	for i, v := range ds.data {
		binary.LittleEndian.PutUint32(vecBytes[i*4:], math.Float32bits(v))
	}

	block, err := compressBlock(vecBytes, compression)
	if err != nil {
		return err
	}

	if _, err := w.Write(block); err != nil {
		return err
	}

	adjBytes := make([]byte, len(g.adj)*4)
	for i, id := range g.adj {
		binary.LittleEndian.PutUint32(adjBytes[i*4:], id)
	}

	block, err = compressBlock(adjBytes, compression)
	if err != nil {
		return err
	}

	_, err = w.Write(block)

	return err
}

// ReadIndex deserializes a dataset and graph written by WriteIndex.
func ReadIndex(r io.Reader) (*Dataset, *Graph, error) {
	hdrBytes := make([]byte, fileHeaderSize)
	if _, err := io.ReadFull(r, hdrBytes); err != nil {
		return nil, nil, err
	}

	var hdr fileHeader
	if err := hdr.decode(hdrBytes); err != nil {
		return nil, nil, err
	}

	vecBytes, err := readBlock(r, hdr.Compression)
	if err != nil {
		return nil, nil, fmt.Errorf("read vectors: %w", err)
	}

	wantVec := int(hdr.Count) * int(hdr.Dim) * 4
	if len(vecBytes) != wantVec {
		return nil, nil, fmt.Errorf("vector section size %d, expected %d", len(vecBytes), wantVec)
	}

	data := make([]float32, int(hdr.Count)*int(hdr.Dim))
	for i := range data {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(vecBytes[i*4:]))
	}

	adjBytes, err := readBlock(r, hdr.Compression)
	if err != nil {
		return nil, nil, fmt.Errorf("read adjacency: %w", err)
	}

	wantAdj := int(hdr.Count) * int(hdr.Degree) * 4
	if len(adjBytes) != wantAdj {
		return nil, nil, fmt.Errorf("adjacency section size %d, expected %d", len(adjBytes), wantAdj)
	}

	adj := make([]uint32, int(hdr.Count)*int(hdr.Degree))
	for i := range adj {
		adj[i] = binary.LittleEndian.Uint32(adjBytes[i*4:])
	}

	ds, err := NewDatasetFlat(data, int(hdr.Dim))
	if err != nil {
		return nil, nil, err
	}

	g, err := NewGraphFlat(adj, int(hdr.Count), int(hdr.Degree))
	if err != nil {
		return nil, nil, err
	}

	return ds, g, nil
}

// WriteIndexFile writes the index to a file, fsyncing before close.
func WriteIndexFile(path string, ds *Dataset, g *Graph, compression CompressionType) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteIndex(f, ds, g, compression); err != nil {
		f.Close()
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// ReadIndexFile reads an index written by WriteIndexFile.
func ReadIndexFile(path string) (*Dataset, *Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return ReadIndex(f)
}
