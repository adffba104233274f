package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/affipay/affipay/internal/logger"
)

// SignatureHeader carries the hex HMAC-SHA256 of the request body computed
// with the shared webhook key.
const SignatureHeader = "X-Signature"

func ComputeSignature(body []byte, key string) string {
	if key == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// NewSignatureMiddleware authenticates inbound webhook payloads. With an
// empty key verification is disabled entirely.
func NewSignatureMiddleware(key string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "failed to read body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			got := r.Header.Get(SignatureHeader)
			want := ComputeSignature(body, key)
			if got == "" || !hmac.Equal([]byte(got), []byte(want)) {
				logger.Log.Warn("rejected webhook with bad signature",
					zap.String("uri", r.RequestURI))
				http.Error(w, "invalid signature", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
