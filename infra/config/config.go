// Package config loads the engine configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Engine   Engine   `yaml:"engine"`
	WAL      WAL      `yaml:"wal"`
	Outbox   Outbox   `yaml:"outbox"`
	Kafka    Kafka    `yaml:"kafka"`
	GRPC     GRPC     `yaml:"grpc"`
	Depth    Depth    `yaml:"depth"`
	Snapshot Snapshot `yaml:"snapshot"`
}

type Engine struct {
	Symbol     string `yaml:"symbol"`
	BasePrice  int64  `yaml:"base_price"`
	TickSize   int64  `yaml:"tick_size"`
	PriceRange int    `yaml:"price_range"`
	Capacity   int    `yaml:"capacity"`
}

type WAL struct {
	Dir         string `yaml:"dir"`
	SegmentSize int64  `yaml:"segment_size"`
}

type Outbox struct {
	Dir string `yaml:"dir"`
}

type Kafka struct {
	Brokers    []string `yaml:"brokers"`
	FillTopic  string   `yaml:"fill_topic"`
	DepthTopic string   `yaml:"depth_topic"`
}

type GRPC struct {
	Addr string `yaml:"addr"`
}

type Depth struct {
	Levels   int           `yaml:"levels"`
	Interval time.Duration `yaml:"interval"`
}

type Snapshot struct {
	Dir      string        `yaml:"dir"`
	Interval time.Duration `yaml:"interval"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Engine: Engine{
			Symbol:     "BTC-USD",
			BasePrice:  10_000,
			TickSize:   1,
			PriceRange: 1024,
			Capacity:   1024,
		},
		WAL:      WAL{Dir: "data/wal", SegmentSize: 2 << 20},
		Outbox:   Outbox{Dir: "data/outbox"},
		Kafka:    Kafka{Brokers: []string{"localhost:9092"}, FillTopic: "fills", DepthTopic: "depth"},
		GRPC:     GRPC{Addr: ":50051"},
		Depth:    Depth{Levels: 10, Interval: time.Second},
		Snapshot: Snapshot{Dir: "data/snapshots", Interval: time.Minute},
	}
}

func (c *Config) Validate() error {
	if c.Engine.Symbol == "" {
		return fmt.Errorf("config: engine.symbol is required")
	}
	if c.Engine.TickSize <= 0 {
		return fmt.Errorf("config: engine.tick_size must be positive, got %d", c.Engine.TickSize)
	}
	if c.Engine.BasePrice <= 0 {
		return fmt.Errorf("config: engine.base_price must be positive, got %d", c.Engine.BasePrice)
	}
	if c.Engine.PriceRange <= 0 {
		return fmt.Errorf("config: engine.price_range must be positive, got %d", c.Engine.PriceRange)
	}
	if c.WAL.Dir == "" {
		return fmt.Errorf("config: wal.dir is required")
	}
	if c.Outbox.Dir == "" {
		return fmt.Errorf("config: outbox.dir is required")
	}
	if c.GRPC.Addr == "" {
		return fmt.Errorf("config: grpc.addr is required")
	}
	if c.Depth.Levels <= 0 {
		return fmt.Errorf("config: depth.levels must be positive, got %d", c.Depth.Levels)
	}
	return nil
}
