// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/moleculab/chemscout/pkg/types"
)

func TestCactusProbeSuccess(t *testing.T) {
	var gotMethod, gotPath atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod.Store(r.Method)
		gotPath.Store(r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	old := cactusImageBase
	cactusImageBase = ts.URL
	defer func() { cactusImageBase = old }()

	src := &CactusSource{Client: newTestClient(), Logger: zerolog.Nop()}
	m := src.Lookup(context.Background(), "caffeine")
	if m == nil {
		t.Fatal("Lookup returned nil, want match")
	}
	if m.CID != "" {
		t.Errorf("CID = %q, want empty: Cactus never assigns one", m.CID)
	}
	if m.MatchedName != "caffeine" {
		t.Errorf("MatchedName = %q, want query unchanged", m.MatchedName)
	}
	if m.Source != types.SourceCactus {
		t.Errorf("Source = %q, want cactus", m.Source)
	}
	if gotMethod.Load() != http.MethodHead {
		t.Errorf("method = %v, want HEAD", gotMethod.Load())
	}
	if p, _ := gotPath.Load().(string); !strings.HasSuffix(p, "/caffeine/image") {
		t.Errorf("path = %q, want .../caffeine/image", p)
	}
}

func TestCactusProbeEncodesQuery(t *testing.T) {
	var gotPath atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.EscapedPath())
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	old := cactusImageBase
	cactusImageBase = ts.URL
	defer func() { cactusImageBase = old }()

	src := &CactusSource{Client: newTestClient(), Logger: zerolog.Nop()}
	if m := src.Lookup(context.Background(), "acetic acid"); m == nil {
		t.Fatal("Lookup returned nil, want match")
	}
	if p, _ := gotPath.Load().(string); !strings.Contains(p, "acetic%20acid") {
		t.Errorf("escaped path = %q, want percent-encoded query", p)
	}
}

func TestCactusProbeMiss(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	old := cactusImageBase
	cactusImageBase = ts.URL
	defer func() { cactusImageBase = old }()

	src := &CactusSource{Client: newTestClient(), Logger: zerolog.Nop()}
	if m := src.Lookup(context.Background(), "gibberish"); m != nil {
		t.Errorf("Lookup = %+v, want nil on 404", m)
	}
}

func TestCactusBlankQuerySkipsNetwork(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	old := cactusImageBase
	cactusImageBase = ts.URL
	defer func() { cactusImageBase = old }()

	src := &CactusSource{Client: newTestClient(), Logger: zerolog.Nop()}
	if m := src.Lookup(context.Background(), "  "); m != nil {
		t.Errorf("Lookup = %+v, want nil", m)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("network calls = %d, want 0", n)
	}
}
