package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/aws-sdk-go-v2/service/transfer"
)

// Key identifies a set of clients. Two keys with the same profile and region share clients.
type Key struct {
	Profile string
	Region  string
}

func (k Key) String() string {
	profile := k.Profile
	if profile == "" {
		profile = "default"
	}
	if k.Region == "" {
		return profile
	}
	return profile + "@" + k.Region
}

// LoadFunc loads an SDK config for a key.
type LoadFunc func(ctx context.Context, key Key) (aws.Config, error)

// Cache holds loaded SDK configs and the service clients built from them, by key.
type Cache struct {
	mu      sync.Mutex
	configs map[Key]aws.Config
	clients map[clientKey]any
}

type clientKey struct {
	Key
	service string
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		configs: make(map[Key]aws.Config),
		clients: make(map[clientKey]any),
	}
}

// Len returns the number of cached configs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.configs)
}

// Factory hands out service clients, reusing the SDK config already loaded for a key.
type Factory struct {
	cache *Cache
	load  LoadFunc
}

// FactoryOption allows customizing the Factory
type FactoryOption func(*Factory)

// WithCache sets the cache the factory reads from and fills.
func WithCache(c *Cache) FactoryOption {
	return func(f *Factory) {
		f.cache = c
	}
}

// WithLoader replaces the SDK config loader.
func WithLoader(load LoadFunc) FactoryOption {
	return func(f *Factory) {
		f.load = load
	}
}

// NewFactory creates a Factory with the given options
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{}

	for _, opt := range opts {
		opt(f)
	}

	if f.cache == nil {
		f.cache = NewCache()
	}
	if f.load == nil {
		f.load = LoadDefaultConfig
	}

	return f
}

// LoadDefaultConfig loads the SDK config from the shared files and environment,
// honouring the profile and region of key when set.
func LoadDefaultConfig(ctx context.Context, key Key) (aws.Config, error) {
	var configOpts []func(*config.LoadOptions) error

	if key.Profile != "" {
		configOpts = append(configOpts, config.WithSharedConfigProfile(key.Profile))
	}

	if key.Region != "" {
		configOpts = append(configOpts, config.WithRegion(key.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}
	return cfg, nil
}

// Config returns the cached SDK config for key, loading it on first use.
func (f *Factory) Config(ctx context.Context, key Key) (aws.Config, error) {
	f.cache.mu.Lock()
	defer f.cache.mu.Unlock()

	if cfg, ok := f.cache.configs[key]; ok {
		return cfg, nil
	}

	cfg, err := f.load(ctx, key)
	if err != nil {
		return aws.Config{}, err
	}
	f.cache.configs[key] = cfg
	return cfg, nil
}

// cachedClient returns the service client cached for key, building it on first use.
func cachedClient[T any](ctx context.Context, f *Factory, key Key, service string, build func(aws.Config) T) (T, error) {
	ck := clientKey{Key: key, service: service}

	f.cache.mu.Lock()
	c, ok := f.cache.clients[ck]
	f.cache.mu.Unlock()
	if ok {
		return c.(T), nil
	}

	cfg, err := f.Config(ctx, key)
	if err != nil {
		var zero T
		return zero, err
	}

	f.cache.mu.Lock()
	defer f.cache.mu.Unlock()
	if c, ok := f.cache.clients[ck]; ok {
		return c.(T), nil
	}
	client := build(cfg)
	f.cache.clients[ck] = client
	return client, nil
}

// Transfer returns an AWS Transfer Family client.
func (f *Factory) Transfer(ctx context.Context, key Key) (TransferAPI, error) {
	return cachedClient(ctx, f, key, "transfer", func(cfg aws.Config) TransferAPI {
		return transfer.NewFromConfig(cfg)
	})
}

// AgentCore returns a Bedrock AgentCore data-plane client.
func (f *Factory) AgentCore(ctx context.Context, key Key) (AgentCoreAPI, error) {
	return cachedClient(ctx, f, key, "bedrockagentcore", func(cfg aws.Config) AgentCoreAPI {
		return bedrockagentcore.NewFromConfig(cfg)
	})
}

// STS returns an STS client.
func (f *Factory) STS(ctx context.Context, key Key) (STSAPI, error) {
	return cachedClient(ctx, f, key, "sts", func(cfg aws.Config) STSAPI {
		return sts.NewFromConfig(cfg)
	})
}

// EC2 returns an EC2 client.
func (f *Factory) EC2(ctx context.Context, key Key) (EC2API, error) {
	return cachedClient(ctx, f, key, "ec2", func(cfg aws.Config) EC2API {
		return ec2.NewFromConfig(cfg)
	})
}

// Secrets returns a resolver backed by SSM Parameter Store and Secrets Manager.
func (f *Factory) Secrets(ctx context.Context, key Key) (*SecretResolver, error) {
	return cachedClient(ctx, f, key, "secrets", func(cfg aws.Config) *SecretResolver {
		return NewSecretResolver(ssm.NewFromConfig(cfg), secretsmanager.NewFromConfig(cfg))
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
