package es

import (
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
)

const categoryIndexSuffix = "_categories"

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func (c ClientConfig) categoryIndex() string {
	return c.IndexName + categoryIndexSuffix
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	if len(config.Addresses) == 0 {
		return nil, fmt.Errorf("at least one elasticsearch address is required")
	}
	if config.IndexName == "" {
		return nil, fmt.Errorf("elasticsearch index name is required")
	}

	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}
