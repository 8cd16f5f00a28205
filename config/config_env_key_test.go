package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":         "mongodb://localhost:27017",
			"maxPoolSize": 50,
		},
		"http": map[string]any{
			"allowOrigins": []any{},
			"rateLimit": map[string]any{
				"requestsPerSecond": 5,
			},
		},
		"blob": map[string]any{
			"maxUploadSize": "5MB",
		},
		"qrcode": map[string]any{
			"baseUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "MONGO_MAXPOOLSIZE", want: "mongo.maxPoolSize"},
		{envKey: "HTTP_ALLOWORIGINS", want: "http.allowOrigins"},
		{envKey: "HTTP_RATELIMIT_REQUESTSPERSECOND", want: "http.rateLimit.requestsPerSecond"},
		{envKey: "BLOB_MAXUPLOADSIZE", want: "blob.maxUploadSize"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "MARKETPLACE_MAXPAGESIZE", want: "marketplace.maxpagesize"},
		{envKey: "MONGO__URI", want: "mongo.uri"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}
