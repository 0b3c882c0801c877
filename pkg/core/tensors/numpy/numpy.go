// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package numpy allows one to read/write tensors to Python's NumPy .npy file format.
//
// Only the dtypes of the catalog are supported: '<i1', '<i2', '<i4', '<i8', '|u1', '<f2', '<f4' and '<f8'
// (and their big-endian variants when reading).
package numpy

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/gomlx/eltwise/pkg/core/dtypes"
	"github.com/gomlx/eltwise/pkg/core/shapes"
	"github.com/gomlx/eltwise/pkg/core/tensors"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

const magic = "\x93NUMPY"

// FromNpyFile reads a .npy file and returns a tensors.Tensor.
func FromNpyFile(filePath string) (*tensors.Tensor, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open .npy file %q", filePath)
	}
	defer func() { _ = file.Close() }()
	t, err := FromNpyReader(file)
	if err != nil {
		return nil, errors.WithMessagef(err, "reading %q", filePath)
	}
	return t, nil
}

// FromNpyReader reads the .npy format from r and returns a tensors.Tensor.
//
// Arrays stored in Fortran order are returned as a transposed view, with the logical (row-major) order
// of the array.
func FromNpyReader(r io.Reader) (*tensors.Tensor, error) {
	prefix := make([]byte, len(magic)+2)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return nil, errors.Wrapf(err, "failed to read magic string")
	}
	if string(prefix[:len(magic)]) != magic {
		return nil, errors.Errorf("invalid .npy file format: magic string mismatch")
	}

	// Header length: 2 bytes in version 1.0, 4 bytes in version 2.0 and above.
	var headerLen int
	switch major := prefix[len(magic)]; {
	case major == 1:
		var n uint16
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, errors.Wrapf(err, "failed to read header length (v1.0)")
		}
		headerLen = int(n)
	case major >= 2:
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, errors.Wrapf(err, "failed to read header length (v2.0+)")
		}
		headerLen = int(n)
	default:
		return nil, errors.Errorf("unsupported .npy version: %d.%d", prefix[len(magic)], prefix[len(magic)+1])
	}
	headerBytes := make([]byte, headerLen)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, errors.Wrapf(err, "failed to read header")
	}

	descr, dims, fortranOrder, err := parseNpyHeader(string(headerBytes))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to parse .npy header")
	}
	dtype, byteOrder, err := npyDTypeToDType(descr)
	if err != nil {
		return nil, err
	}

	storedDims := dims
	if fortranOrder && len(dims) > 1 {
		storedDims = reversed(dims)
	}
	t := tensors.FromShape(shapes.Make(dtype, storedDims...))
	if err := readFlat(r, byteOrder, t); err != nil {
		return nil, errors.Wrapf(err, "failed to read tensor data for shape %s", t.Shape())
	}
	if fortranOrder && len(dims) > 1 {
		permutation := make([]int, len(dims))
		for axis := range permutation {
			permutation[axis] = len(dims) - 1 - axis
		}
		t = t.Transpose(permutation...)
	}
	return t, nil
}

func reversed(dims []int) []int {
	r := make([]int, len(dims))
	for ii, d := range dims {
		r[len(dims)-1-ii] = d
	}
	return r
}

// readFlat fills the contiguous tensor t with data from r.
func readFlat(r io.Reader, order binary.ByteOrder, t *tensors.Tensor) error {
	switch t.DType() {
	case dtypes.Int8:
		return binary.Read(r, order, tensors.FlatData[int8](t))
	case dtypes.Int16:
		return binary.Read(r, order, tensors.FlatData[int16](t))
	case dtypes.Int32:
		return binary.Read(r, order, tensors.FlatData[int32](t))
	case dtypes.Int64:
		return binary.Read(r, order, tensors.FlatData[int64](t))
	case dtypes.Uint8:
		return binary.Read(r, order, tensors.FlatData[uint8](t))
	case dtypes.Float16:
		return binary.Read(r, order, tensors.FlatData[float16.Float16](t))
	case dtypes.Float32:
		return binary.Read(r, order, tensors.FlatData[float32](t))
	case dtypes.Float64:
		return binary.Read(r, order, tensors.FlatData[float64](t))
	}
	return errors.Errorf("dtype %s not supported", t.DType())
}

// writeFlat writes the elements of t in logical order, little-endian.
func writeFlat(w io.Writer, t *tensors.Tensor) error {
	switch t.DType() {
	case dtypes.Int8:
		return binary.Write(w, binary.LittleEndian, tensors.MustCopyFlatData[int8](t))
	case dtypes.Int16:
		return binary.Write(w, binary.LittleEndian, tensors.MustCopyFlatData[int16](t))
	case dtypes.Int32:
		return binary.Write(w, binary.LittleEndian, tensors.MustCopyFlatData[int32](t))
	case dtypes.Int64:
		return binary.Write(w, binary.LittleEndian, tensors.MustCopyFlatData[int64](t))
	case dtypes.Uint8:
		return binary.Write(w, binary.LittleEndian, tensors.MustCopyFlatData[uint8](t))
	case dtypes.Float16:
		return binary.Write(w, binary.LittleEndian, tensors.MustCopyFlatData[float16.Float16](t))
	case dtypes.Float32:
		return binary.Write(w, binary.LittleEndian, tensors.MustCopyFlatData[float32](t))
	case dtypes.Float64:
		return binary.Write(w, binary.LittleEndian, tensors.MustCopyFlatData[float64](t))
	}
	return errors.Errorf("dtype %s not supported", t.DType())
}

var (
	reDescr   = regexp.MustCompile(`'descr'\s*:\s*'([^']*)'`)
	reFortran = regexp.MustCompile(`'fortran_order'\s*:\s*(True|False)`)
	reShape   = regexp.MustCompile(`'shape'\s*:\s*\(([^)]*)\)`)
)

// parseNpyHeader extracts dtype, shape, and fortran_order from the .npy header string, e.g.:
// "{'descr': '<f4', 'fortran_order': False, 'shape': (1, 2, 3), }".
func parseNpyHeader(header string) (descr string, dims []int, fortranOrder bool, err error) {
	mDescr := reDescr.FindStringSubmatch(header)
	if len(mDescr) < 2 {
		err = errors.Errorf("could not find 'descr' in header: %q", header)
		return
	}
	descr = mDescr[1]

	mFortran := reFortran.FindStringSubmatch(header)
	if len(mFortran) < 2 {
		err = errors.Errorf("could not find 'fortran_order' in header: %q", header)
		return
	}
	fortranOrder = mFortran[1] == "True"

	mShape := reShape.FindStringSubmatch(header)
	if len(mShape) < 2 {
		err = errors.Errorf("could not find 'shape' in header: %q", header)
		return
	}
	for _, p := range strings.Split(mShape[1], ",") {
		p = strings.TrimSpace(p)
		if p == "" { // Trailing comma, like in "(10,)", or scalar "()".
			continue
		}
		dim, pErr := strconv.Atoi(p)
		if pErr != nil || dim < 0 {
			err = errors.Errorf("invalid shape value %q in header", p)
			return
		}
		dims = append(dims, dim)
	}
	return
}

// npyDTypeToDType converts a NumPy dtype string (e.g. "<f4") to a DType and its byte order.
func npyDTypeToDType(descr string) (dtypes.DType, binary.ByteOrder, error) {
	var order binary.ByteOrder = binary.LittleEndian
	kind := descr
	if len(descr) > 0 {
		switch descr[0] {
		case '>':
			order = binary.BigEndian
			kind = descr[1:]
		case '<', '|', '=':
			kind = descr[1:]
		}
	}
	for dtype, npyKind := range npyKinds {
		if npyKind == kind {
			return dtype, order, nil
		}
	}
	return dtypes.InvalidDType, nil, errors.Errorf("unsupported NumPy dtype %q", descr)
}

var npyKinds = map[dtypes.DType]string{
	dtypes.Int8:    "i1",
	dtypes.Int16:   "i2",
	dtypes.Int32:   "i4",
	dtypes.Int64:   "i8",
	dtypes.Uint8:   "u1",
	dtypes.Float16: "f2",
	dtypes.Float32: "f4",
	dtypes.Float64: "f8",
}

// ToNpyWriter serializes a tensors.Tensor to an io.Writer in .npy format (version 1.0, C order).
func ToNpyWriter(t *tensors.Tensor, w io.Writer) error {
	kind, found := npyKinds[t.DType()]
	if !found {
		return errors.Errorf("dtype %s not supported by .npy", t.DType())
	}
	byteOrder := "<"
	if t.DType().Size() == 1 {
		byteOrder = "|"
	}
	shapeStr := ""
	dims := t.Shape().Dimensions
	if len(dims) == 1 {
		shapeStr = fmt.Sprintf("%d,", dims[0])
	} else {
		parts := make([]string, len(dims))
		for ii, d := range dims {
			parts[ii] = strconv.Itoa(d)
		}
		shapeStr = strings.Join(parts, ", ")
	}
	headerDict := fmt.Sprintf("{'descr': '%s%s', 'fortran_order': False, 'shape': (%s), }", byteOrder, kind, shapeStr)

	// The total of magic, version, header length and header must be a multiple of 64.
	var header bytes.Buffer
	header.WriteString(headerDict)
	preambleLen := len(magic) + 2 + 2
	for (preambleLen+header.Len()+1)%64 != 0 {
		header.WriteByte(' ')
	}
	header.WriteByte('\n')
	if header.Len() > 0xFFFF {
		return errors.Errorf("header too long (%d bytes) for .npy version 1.0", header.Len())
	}

	var preamble bytes.Buffer
	preamble.WriteString(magic)
	preamble.Write([]byte{1, 0})
	_ = binary.Write(&preamble, binary.LittleEndian, uint16(header.Len()))
	if _, err := w.Write(preamble.Bytes()); err != nil {
		return errors.Wrapf(err, "failed to write .npy preamble")
	}
	if _, err := w.Write(header.Bytes()); err != nil {
		return errors.Wrapf(err, "failed to write .npy header")
	}
	if err := writeFlat(w, t); err != nil {
		return errors.Wrapf(err, "failed to write tensor data")
	}
	return nil
}

// ToNpyFile serializes a tensors.Tensor to the given file path in .npy format.
func ToNpyFile(t *tensors.Tensor, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to create .npy file %q", filePath)
	}
	if err := ToNpyWriter(t, file); err != nil {
		_ = file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "failed to close %q", filePath)
}
