package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reviewlens/reviewlens/config"
)

func TestBigQueryWarehouse_DSN(t *testing.T) {
	cfg := &config.Config{
		Warehouse: config.WarehouseConfig{
			Project: "spheric-engine-451615",
			Dataset: "amazon_reviews",
		},
	}

	w := NewBigQueryWarehouse(cfg)
	assert.Equal(t, "bigquery://spheric-engine-451615/amazon_reviews", w.dsn())
}
