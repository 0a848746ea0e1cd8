package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiDiff = `diff --git a/src/api.js b/src/api.js
--- a/src/api.js
+++ b/src/api.js
@@ -1,2 +1,6 @@
+import axios from 'axios';
+async function fetchData() {
+  return await axios.get('/api/data');
+}
-function legacyFetch() {
`

func TestExtractSymbolsAndImports(t *testing.T) {
	t.Parallel()

	files := NewStagedFiles([]string{"src/api.js"})
	ev := Extract(files, apiDiff)

	// Symbol names come from added and removed lines alike.
	assert.Equal(t, []string{"fetchData", "legacyFetch"}, ev.Functions)
	// Imports come from added lines only.
	assert.Equal(t, []string{"axios"}, ev.Imports)
	assert.Empty(t, ev.Tests)
	assert.Empty(t, ev.Types)
}

func TestExtractAddedOnlyKinds(t *testing.T) {
	t.Parallel()

	diff := `+++ b/src/types.ts
+export interface User {
-export interface Ghost {
+import { z } from 'zod';
-import removed from 'gone';
`
	ev := Extract(NewStagedFiles([]string{"src/types.ts"}), diff)

	assert.Equal(t, []string{"User"}, ev.Types, "removed type declarations must not contribute")
	assert.Equal(t, []string{"zod"}, ev.Imports, "removed imports must not contribute")
}

func TestExtractTestAssertionsGatedOnTestNamedFiles(t *testing.T) {
	t.Parallel()

	diff := `+++ b/src/app.test.js
+expect(result).toBe(42);
+++ b/src/app.js
+expect(this_is_not_a_test_file).toBe(1);
`
	files := NewStagedFiles([]string{"src/app.test.js", "src/app.js"})
	ev := Extract(files, diff)

	require.Len(t, ev.Tests, 1)
	assert.Equal(t, "expect(result).toBe(42);", ev.Tests[0])
}

func TestExtractConfigKeys(t *testing.T) {
	t.Parallel()

	diff := `+++ b/config.yml
+timeout: 30
+retries: 2
+timeout: 60
`
	ev := Extract(NewStagedFiles([]string{"config.yml"}), diff)
	assert.Equal(t, []string{"timeout", "retries"}, ev.Configs, "keys deduplicate in first-seen order")
}

func TestExtractDeduplicatesFirstSeen(t *testing.T) {
	t.Parallel()

	diff := `+++ b/lib.go
+func Process() error {
+func Process() error {
+func Render() {
`
	ev := Extract(NewStagedFiles([]string{"lib.go"}), diff)
	assert.Equal(t, []string{"Process", "Render"}, ev.Functions)
}

func TestExtractIgnoresUnstagedSections(t *testing.T) {
	t.Parallel()

	diff := `+++ b/other/file.js
+function orphan() {}
`
	ev := Extract(NewStagedFiles([]string{"src/api.js"}), diff)
	assert.Empty(t, ev.Functions, "diff sections for files not in the staged list are skipped")
}

func TestExtractGoFunctions(t *testing.T) {
	t.Parallel()

	diff := `+++ b/internal/server/server.go
+func (s *Server) Handle(w http.ResponseWriter, r *http.Request) {
+type Server struct {
+import "net/http"
`
	ev := Extract(NewStagedFiles([]string{"internal/server/server.go"}), diff)
	assert.Equal(t, []string{"Handle"}, ev.Functions)
	assert.Equal(t, []string{"Server"}, ev.Types)
	assert.Equal(t, []string{"net/http"}, ev.Imports)
}
