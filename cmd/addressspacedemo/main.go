// Command addressspacedemo walks a small, fixture-backed address space
// through the Resolver façade: it resolves the well-known Server object,
// browses its children, and prints what it finds. It exists to exercise
// the ambient stack (config, logging) around the core library, not to
// talk to a real OPC UA server.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/amine-amaach/opcua-addressspace/addressspace"
	"github.com/amine-amaach/opcua-addressspace/model"
	"github.com/amine-amaach/opcua-addressspace/opcuaclient"
)

func main() {
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}

	config := getConfig(logger)
	if level, err := logrus.ParseLevel(config.LogLevel); err == nil {
		logger.Level = level
	}

	client := newFixtureClient()
	resolver := addressspace.NewResolver(
		client,
		addressspace.WithCache(time.Duration(config.CacheExpireAfterSeconds)*time.Second, uint64(config.CacheMaximumSize)),
		addressspace.WithLogger(logger),
	)
	defer resolver.Close()

	ctx := context.Background()

	server, err := resolver.GetObject(ctx, opcuaclient.Server)
	if err != nil {
		logger.Fatalf("failed to resolve Server object: %v", err)
	}
	logger.Infof("resolved %s (%s)", server.DisplayName.Text, server.NodeClass)

	children, err := resolver.Browse(ctx, server.NodeID)
	if err != nil {
		logger.Fatalf("failed to browse Server: %v", err)
	}
	for _, child := range children {
		logger.Infof("  -> %s", child.Class())
		if v, ok := child.(*model.VariableNode); ok {
			logger.Infof("     value: %v", v.Value.Value)
		}
	}

	hits, misses := resolver.CacheStats()
	logger.Infof("cache stats: %d hits, %d misses", hits, misses)
}
