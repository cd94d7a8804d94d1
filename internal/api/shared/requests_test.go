package shared

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentencePayload struct {
	Sentence string `json:"sentence" validate:"required"`
	WordID   string `json:"word_id"  validate:"required,uuid"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		wantErr     error
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"sentence": "I saw a cat", "word_id": "6f1c3c7e-5d0a-4d4e-9f55-0c1f5a8e2b11"}`,
		},
		{
			name:        "invalid json",
			requestBody: `{"sentence": "x",}`,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     ErrEmptyBody,
		},
		{
			name:        "wrong type",
			requestBody: `{"sentence": 42}`,
			errContains: "cannot unmarshal number",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))

			var payload sentencePayload
			err := DecodeJSON(req, &payload)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, "I saw a cat", payload.Sentence)
			}
		})
	}
}

type errorReader struct{}

func (errorReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeJSONWithReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", errorReader{})

	var target struct{}
	err := DecodeJSON(req, &target)

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecodeJSONBodyLimit(t *testing.T) {
	huge := `{"sentence": "` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(huge))

	var payload sentencePayload
	assert.Error(t, DecodeJSON(req, &payload))
}

type selfValidating struct {
	Name string
}

func (s *selfValidating) Validate() error {
	if s.Name == "invalid" {
		return errors.New("name is invalid")
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	t.Run("struct tags pass", func(t *testing.T) {
		err := ValidateRequest(&sentencePayload{
			Sentence: "hello",
			WordID:   "6f1c3c7e-5d0a-4d4e-9f55-0c1f5a8e2b11",
		})
		assert.NoError(t, err)
	})

	t.Run("struct tags fail", func(t *testing.T) {
		err := ValidateRequest(&sentencePayload{WordID: "not-a-uuid"})

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs, 2)
	})

	t.Run("custom validator", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&selfValidating{Name: "ok"}))
		assert.EqualError(t, ValidateRequest(&selfValidating{Name: "invalid"}), "name is invalid")
	})
}
