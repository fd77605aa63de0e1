package storage_test

import (
	"testing"

	"econ-cdn/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	cases := map[string]storage.Config{
		"BareEndpoint": {
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "econ",
			Region:    "us-east-1",
		},
		"EndpointWithHTTP": {
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		},
		"EndpointWithHTTPS": {
			Endpoint:       "https://s3.amazonaws.com",
			AccessKey:      "testkey",
			SecretKey:      "testsecret",
			UseSSL:         true,
			Region:         "us-east-1",
			TimeoutSeconds: 5,
		},
		"ZeroTimeoutFallsBackToDefault": {
			Endpoint:       "localhost:9000",
			TimeoutSeconds: 0,
		},
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			client, err := storage.NewClient(cfg)
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
