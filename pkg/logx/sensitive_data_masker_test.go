package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"saftz/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Query",
			input:  []byte(`{"query":"поставка кабеля ВВГнг 3x2.5"}`),
			output: []byte(`{"query":"[MASKED]"}`),
		},
		{
			name:   "Query capital letter",
			input:  []byte(`{"Query": "ремонт кровли","sortBy":"price-asc"}`),
			output: []byte(`{"Query": "[MASKED]","sortBy":"price-asc"}`),
		},
		{
			name:   "Bearer token",
			input:  []byte("GET /v1/sessions HTTP/1.1\r\nAuthorization: Bearer abc.def\r\n"),
			output: []byte("GET /v1/sessions HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\n"),
		},
		{
			name:   "Nothing to mask",
			input:  []byte(`{"phase":"searching","viewed":12}`),
			output: []byte(`{"phase":"searching","viewed":12}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestNopSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	input := []byte(`{"query":"ремонт кровли"}`)

	rq.Equal(input, logx.NewNopSensitiveDataMasker().Mask(input))
}

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	level, err := logx.ParseLevel("debug")
	rq.NoError(err)
	rq.Equal("DEBUG", level.String())

	_, err = logx.ParseLevel("loud")
	rq.Error(err)
}
