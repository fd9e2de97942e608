// Package config loads spbench settings from spbench.yaml and SPBENCH_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/pq"
	"github.com/katalvlaran/lvpath/store"
)

// EnvPrefix is the prefix of environment overrides: engine.store is read
// from SPBENCH_ENGINE_STORE.
const EnvPrefix = "SPBENCH"

type Config struct {
	Graph   GraphConfig   `mapstructure:"graph"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Query   QueryConfig   `mapstructure:"query"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type GraphConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"` // sp, weighted, topology
}

type EngineConfig struct {
	Store         string `mapstructure:"store"` // epoch, dense, sparse
	Queue         string `mapstructure:"queue"` // binary, std
	QueueCapacity int    `mapstructure:"queue_capacity"`
}

// QueryConfig holds query bounds. Zero or negative values mean unlimited.
type QueryConfig struct {
	TargetCount        int   `mapstructure:"target_count"`
	MaxWeight          int64 `mapstructure:"max_weight"`
	MaxNodeWeights     int   `mapstructure:"max_node_weights"`
	MaxHeapSize        int   `mapstructure:"max_heap_size"`
	ForbidSourceTarget bool  `mapstructure:"forbid_source_target"`
}

type BatchConfig struct {
	Workers int `mapstructure:"workers"` // 0: GOMAXPROCS
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
	Out       string `mapstructure:"out"` // textfile path; empty disables
}

// Load reads the configuration from file and environment variables. With
// an empty cfgFile it looks for spbench.yaml in ~/.spbench and the working
// directory; a missing file there is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".spbench"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("spbench")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("graph.path", "")
	v.SetDefault("graph.format", "sp")
	v.SetDefault("engine.store", store.KindEpoch.String())
	v.SetDefault("engine.queue", pq.KindBinary.String())
	v.SetDefault("engine.queue_capacity", 0)
	v.SetDefault("query.target_count", 0)
	v.SetDefault("query.max_weight", 0)
	v.SetDefault("query.max_node_weights", 0)
	v.SetDefault("query.max_heap_size", 0)
	v.SetDefault("query.forbid_source_target", false)
	v.SetDefault("batch.workers", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics.namespace", "lvpath")
	v.SetDefault("metrics.out", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// EngineOptions translates the engine section into dijkstra options.
func (c EngineConfig) EngineOptions() ([]dijkstra.Option, error) {
	sk, err := store.ParseKind(c.Store)
	if err != nil {
		return nil, err
	}
	qk, err := pq.ParseKind(c.Queue)
	if err != nil {
		return nil, err
	}
	if c.QueueCapacity < 0 {
		return nil, fmt.Errorf("engine.queue_capacity=%d: %w", c.QueueCapacity, dijkstra.ErrBadQueueCapacity)
	}

	return []dijkstra.Option{
		dijkstra.WithStore(sk),
		dijkstra.WithQueue(qk),
		dijkstra.WithQueueCapacity(c.QueueCapacity),
	}, nil
}

// Apply copies the bounds onto q; non-positive values leave q unlimited.
func (c QueryConfig) Apply(q *dijkstra.Query[int64]) {
	q.TargetCount = c.TargetCount
	q.ForbidSourceTarget = c.ForbidSourceTarget
	if c.MaxWeight > 0 {
		q.MaxWeight = c.MaxWeight
	}
	q.MaxNodeWeights = limit(c.MaxNodeWeights)
	q.MaxHeapSize = limit(c.MaxHeapSize)
}

func limit(n int) int {
	if n <= 0 {
		return math.MaxInt
	}
	return n
}
