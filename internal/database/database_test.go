// ReelMatch - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	return setupTestDBWithConfig(t, &config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "512MB",
		Threads:   1,
	})
}

func setupTestDBWithConfig(t *testing.T, cfg *config.DatabaseConfig) *DB {
	t.Helper()
	db, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func intPtr(v int) *int             { return &v }
func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func testTitles() []recommend.Title {
	return []recommend.Title{
		{ID: "tt0000001", Year: intPtr(2001), Rating: float64Ptr(7.0), Genres: []string{"Drama"}, Cast: []string{"nm0000001"}, Votes: 100},
		{ID: "tt0000002", Year: intPtr(2000), Rating: float64Ptr(7.1), Genres: []string{"Drama"}, Cast: []string{"nm0000001"}, Votes: 50},
		{ID: "tt0000003", Year: intPtr(2005), Rating: float64Ptr(5.0), Genres: []string{"Comedy"}, Cast: []string{"nm0000002"}, Votes: 500},
		{ID: "tt0000004", Year: intPtr(1990), Rating: float64Ptr(8.0), Genres: []string{"Drama", "Comedy"}, Cast: []string{"nm0000001", "nm0000003"}, Votes: 10},
		{ID: "tt0000005", Year: nil, Rating: nil, Genres: []string{"Drama"}, Cast: []string{"nm0000004"}, Votes: 5000},
		{ID: "tt0000006", Year: intPtr(2001), Rating: float64Ptr(6.0), Genres: nil, Cast: []string{"nm0000001"}, Votes: 900},
	}
}

func seedTitles(t *testing.T, db *DB) {
	t.Helper()
	if err := db.InsertTitles(context.Background(), testTitles()); err != nil {
		t.Fatalf("InsertTitles() error = %v", err)
	}
}

func TestNew_CreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	n, err := db.CountTitles(context.Background())
	if err != nil {
		t.Fatalf("CountTitles() error = %v", err)
	}
	if n != 0 {
		t.Errorf("CountTitles() = %d, want 0 on fresh database", n)
	}
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestGetTitle(t *testing.T) {
	db := setupTestDB(t)
	seedTitles(t, db)
	ctx := context.Background()

	got, err := db.GetTitle(ctx, "tt0000004")
	if err != nil {
		t.Fatalf("GetTitle() error = %v", err)
	}
	want := testTitles()[3]
	if !reflect.DeepEqual(*got, want) {
		t.Errorf("GetTitle() = %+v, want %+v", *got, want)
	}

	unknown, err := db.GetTitle(ctx, "tt0000005")
	if err != nil {
		t.Fatalf("GetTitle() error = %v", err)
	}
	if unknown.Year != nil || unknown.Rating != nil {
		t.Errorf("NULL year/rating should scan as nil, got %+v", unknown)
	}

	if _, err := db.GetTitle(ctx, "tt9999999"); !errors.Is(err, recommend.ErrNotFound) {
		t.Errorf("GetTitle(missing) error = %v, want ErrNotFound", err)
	}
}

func TestInsertTitles_Upsert(t *testing.T) {
	db := setupTestDB(t)
	seedTitles(t, db)
	ctx := context.Background()

	updated := testTitles()[0]
	updated.Votes = 12345
	if err := db.InsertTitles(ctx, []recommend.Title{updated}); err != nil {
		t.Fatalf("InsertTitles() error = %v", err)
	}

	got, err := db.GetTitle(ctx, updated.ID)
	if err != nil {
		t.Fatalf("GetTitle() error = %v", err)
	}
	if got.Votes != 12345 {
		t.Errorf("Votes = %d, want 12345", got.Votes)
	}
	if n, _ := db.CountTitles(ctx); n != int64(len(testTitles())) {
		t.Errorf("CountTitles() = %d, want %d", n, len(testTitles()))
	}
}

func TestGetCatalogBounds(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	empty, err := db.GetCatalogBounds(ctx)
	if err != nil {
		t.Fatalf("GetCatalogBounds() error = %v", err)
	}
	if empty.Titles != 0 || empty.MinVotes != nil || empty.MaxYear != nil || empty.MinRating != nil {
		t.Errorf("empty catalog bounds = %+v, want zero count and nil bounds", empty)
	}

	seedTitles(t, db)
	b, err := db.GetCatalogBounds(ctx)
	if err != nil {
		t.Fatalf("GetCatalogBounds() error = %v", err)
	}
	if b.Titles != 6 {
		t.Errorf("Titles = %d, want 6", b.Titles)
	}
	if *b.MinVotes != 10 || *b.MaxVotes != 5000 {
		t.Errorf("votes = %d..%d, want 10..5000", *b.MinVotes, *b.MaxVotes)
	}
	if *b.MinYear != 1990 || *b.MaxYear != 2005 {
		t.Errorf("year = %d..%d, want 1990..2005", *b.MinYear, *b.MaxYear)
	}
	if *b.MinRating != 5.0 || *b.MaxRating != 8.0 {
		t.Errorf("rating = %v..%v, want 5..8", *b.MinRating, *b.MaxRating)
	}
}

func TestImportCatalogCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "it's-imdb.csv")
	csv := "tconst,year,genres,nconsts,rating,votes\n" +
		"tt0000001,1994,\"Crime,Drama\",\"nm0000151,nm0000209\",9.3,2800000\n" +
		"tt0000002,\\N,Comedy,nm0000001,,12\n"
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	db := setupTestDB(t)
	ctx := context.Background()

	n, err := db.ImportCatalogCSV(ctx, path)
	if err != nil {
		t.Fatalf("ImportCatalogCSV() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("imported %d rows, want 2", n)
	}

	got, err := db.GetTitle(ctx, "tt0000001")
	if err != nil {
		t.Fatalf("GetTitle() error = %v", err)
	}
	if !reflect.DeepEqual(got.Genres, []string{"Crime", "Drama"}) || len(got.Cast) != 2 {
		t.Errorf("imported tags = %v / %v", got.Genres, got.Cast)
	}
	if got.Votes != 2800000 || *got.Year != 1994 {
		t.Errorf("imported row = %+v", got)
	}

	sparse, err := db.GetTitle(ctx, "tt0000002")
	if err != nil {
		t.Fatalf("GetTitle() error = %v", err)
	}
	if sparse.Year != nil || sparse.Rating != nil {
		t.Errorf("unparseable year/rating should import as NULL, got %+v", sparse)
	}

	again, err := db.ImportCatalogCSV(ctx, path)
	if err != nil {
		t.Fatalf("second ImportCatalogCSV() error = %v", err)
	}
	if again != 0 {
		t.Errorf("second import added %d rows, want 0 for a populated catalog", again)
	}
}

func TestNew_ImportsConfiguredCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	if err := os.WriteFile(path, []byte("tconst,year,genres,nconsts,rating,votes\ntt0000001,2000,Drama,nm1,7.0,10\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	db := setupTestDBWithConfig(t, &config.DatabaseConfig{
		Path:       ":memory:",
		MaxMemory:  "512MB",
		Threads:    1,
		CatalogCSV: path,
	})
	if n, _ := db.CountTitles(context.Background()); n != 1 {
		t.Errorf("CountTitles() = %d, want 1 after start-up import", n)
	}
}

func TestQuoteLiteral(t *testing.T) {
	if got := quoteLiteral("/data/it's.csv"); got != "'/data/it''s.csv'" {
		t.Errorf("quoteLiteral() = %s", got)
	}
}

func TestSplitTags(t *testing.T) {
	tests := map[string][]string{
		"":              nil,
		"Drama":         {"Drama"},
		"Crime, Drama":  {"Crime", "Drama"},
		"Action,,Drama": {"Action", "Drama"},
	}
	for in, want := range tests {
		if got := splitTags(in); !reflect.DeepEqual(got, want) {
			t.Errorf("splitTags(%q) = %v, want %v", in, got, want)
		}
	}
}
