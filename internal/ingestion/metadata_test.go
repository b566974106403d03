package ingestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	data := []byte("resume body")
	m := NewMetadata("cv.pdf", FormatPDF, data)

	assert.Equal(t, "cv.pdf", m.Filename)
	assert.Equal(t, FormatPDF, m.Format)
	assert.Equal(t, len(data), m.Size)
	assert.Len(t, m.Hash, 64)

	_, err := time.Parse(time.RFC3339, m.Timestamp)
	require.NoError(t, err)
}

func TestComputeHash(t *testing.T) {
	// SHA256 of "test content"
	assert.Equal(t,
		"6ae8a75555209fd6c44157c0aed8016e763ff435a19cf186f76863140143ff72",
		computeHash([]byte("test content")))
	assert.NotEqual(t, computeHash([]byte("a")), computeHash([]byte("b")))
}
