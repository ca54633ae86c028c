// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ik5/sndstream/audio"
)

func chunkBytes(order binary.ByteOrder, id string, body []byte) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString(id)
	binary.Write(buf, order, uint32(len(body)))
	buf.Write(body)
	if len(body)%2 == 1 {
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

func TestScanChunks(t *testing.T) {
	t.Parallel()

	var data []byte
	data = append(data, "HEAD"...)
	data = append(data, chunkBytes(binary.LittleEndian, "fmt ", make([]byte, 16))...)
	data = append(data, chunkBytes(binary.LittleEndian, "odd!", []byte{1, 2, 3})...)
	data = append(data, chunkBytes(binary.LittleEndian, "data", []byte{9, 9, 9, 9})...)

	chunks, err := ScanChunks(bytes.NewReader(data), 4, int64(len(data)), binary.LittleEndian)
	if err != nil {
		t.Fatalf("ScanChunks() error = %v", err)
	}

	want := []Chunk{
		{ID: "fmt ", Offset: 12, Size: 16},
		{ID: "odd!", Offset: 36, Size: 3},
		{ID: "data", Offset: 48, Size: 4},
	}
	if diff := cmp.Diff(want, chunks); diff != "" {
		t.Errorf("ScanChunks() mismatch (-want +got):\n%s", diff)
	}

	c, ok := Find(chunks, "data")
	if !ok {
		t.Fatal("Find(data) not found")
	}
	body, err := ReadChunk(bytes.NewReader(data), c)
	if err != nil || !bytes.Equal(body, []byte{9, 9, 9, 9}) {
		t.Errorf("ReadChunk() = %v, %v", body, err)
	}

	if _, ok := Find(chunks, "LIST"); ok {
		t.Error("Find(LIST) reported a missing chunk")
	}
}

func TestScanChunks_TruncatedBodyIsClamped(t *testing.T) {
	t.Parallel()

	data := chunkBytes(binary.BigEndian, "SSND", make([]byte, 100))[:50]

	chunks, err := ScanChunks(bytes.NewReader(data), 0, 1<<20, binary.BigEndian)
	if err != nil {
		t.Fatalf("ScanChunks() error = %v", err)
	}
	if len(chunks) != 1 || chunks[0].Size != 42 {
		t.Errorf("ScanChunks() = %+v, want one chunk of 42 bytes", chunks)
	}
}

func TestReadChunk_Short(t *testing.T) {
	t.Parallel()

	_, err := ReadChunk(bytes.NewReader([]byte("abc")), Chunk{ID: "fmt ", Offset: 0, Size: 10})
	if !errors.Is(err, audio.ErrMalformedData) {
		t.Errorf("ReadChunk() error = %v, want ErrMalformedData", err)
	}
}
