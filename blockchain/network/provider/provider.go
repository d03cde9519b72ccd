package provider

import (
	"fmt"
	"net/url"
	"strings"
)

// Provider is the Url wrapper to the remote
// blockchain node along with the access key.
//
// The Provider is not responsible for connecting.
// Refer to blockchain/evm/client
type Provider struct {
	base_url   string
	access_key string
}

// New provider from the base url and the access key.
// The access key is appended to the base url as the last path segment:
//
//	https://sepolia.infura.io/v3 + <key> = https://sepolia.infura.io/v3/<key>
func New(base_url string, access_key string) (Provider, error) {
	if len(base_url) == 0 {
		return Provider{}, fmt.Errorf("empty url or its missing")
	}
	if len(access_key) == 0 {
		return Provider{}, fmt.Errorf("empty access key")
	}
	if strings.ContainsAny(access_key, "/?# ") {
		return Provider{}, fmt.Errorf("the access key has characters not allowed in the url path")
	}

	u, err := url.ParseRequestURI(base_url)
	if err != nil {
		return Provider{}, fmt.Errorf("invalid '%s' provider url: %w", base_url, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Provider{}, fmt.Errorf("invalid '%s' provider protocol. Expected either 'http' or 'https'. But given '%s'", base_url, u.Scheme)
	}

	return Provider{
		base_url:   strings.TrimSuffix(base_url, "/"),
		access_key: access_key,
	}, nil
}

// Url returns the provider url with the access key.
// Don't print it, the access key is a secret.
func (provider Provider) Url() string {
	return provider.base_url + "/" + provider.access_key
}

// String returns the url without the access key.
// Use it in the logs.
func (provider Provider) String() string {
	return provider.base_url + "/***"
}
