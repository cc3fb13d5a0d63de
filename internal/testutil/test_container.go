//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

var (
	sharedContainer     *MongoDBContainer
	sharedContainerErr  error
	sharedContainerOnce sync.Once
	dbCounter           atomic.Int64
)

// GetSharedMongoDB starts the package-wide container on first use and returns it afterwards.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedContainerOnce.Do(func() {
		sharedContainer, sharedContainerErr = SetupMongoDB(ctx)
	})
	return sharedContainer, sharedContainerErr
}

// SetupTestMainWithMongoDB runs the package tests against a shared MongoDB container.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	container, err := GetSharedMongoDB(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mongodb container: %v\n", err)
		return 1
	}

	code := m.Run()

	if err := container.Cleanup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the URI of the shared MongoDB container.
// It panics when called outside SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	if sharedContainer == nil {
		panic("shared MongoDB container not initialized")
	}
	return sharedContainer.URI
}

// SanitizeDBName turns a test name into a unique, valid MongoDB database name.
func SanitizeDBName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$', '*', '<', '>', ':', '|', '?':
			return '_'
		}
		return r
	}, testName)
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%d_%d", name, os.Getpid()%10000, dbCounter.Add(1))
}
