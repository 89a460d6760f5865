package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	"github.com/johnquangdev/meeting-analyzer/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "production"},
		Database: config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			Path:           filepath.Join(t.TempDir(), "repo.db"),
			ConnectRetries: 1,
		},
	}
	db, err := database.NewDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.CloseDB(db) })

	_, err = database.Migrate(db, cfg.Database.Driver)
	require.NoError(t, err)
	return db
}

func strPtr(s string) *string { return &s }

func sampleAnalysis(title string) *entities.Analysis {
	return entities.NewAnalysis(&entities.MeetingAnalysis{
		Title: title,
		ActionItems: []entities.ExtractedActionItem{
			{Description: "Send the budget", Owner: strPtr("Alice"), Deadline: strPtr("Friday")},
			{Description: "Book a room"},
		},
		KeyDecisions: []entities.ExtractedDecision{
			{Decision: "Ship in March", Context: strPtr("after QA sign-off")},
		},
		Sentiment: entities.SentimentPositive,
		Summary:   strPtr("Planning sync"),
		Raw:       []byte(`{"title":"` + title + `"}`),
	}, "openai", "gpt-3.5-turbo")
}

func TestAnalysisRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAnalysisRepository(newTestDB(t))

	analysis := sampleAnalysis("Weekly sync")
	require.NoError(t, repo.Create(ctx, "Alice: hello", analysis))
	require.NotNil(t, analysis.Transcript)
	assert.NotEqual(t, uuid.Nil, analysis.TranscriptID)

	found, err := repo.FindByID(ctx, analysis.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "Weekly sync", *found.Title)
	assert.Equal(t, entities.SentimentPositive, found.Sentiment)
	assert.Equal(t, "Alice: hello", found.Transcript.Text)
	assert.Equal(t, "openai", found.Provider)
	assert.JSONEq(t, `{"title":"Weekly sync"}`, string(found.RawResponse))

	require.Len(t, found.ActionItems, 2)
	assert.Equal(t, "Send the budget", found.ActionItems[0].Description)
	assert.Equal(t, "Alice", *found.ActionItems[0].Owner)
	assert.Nil(t, found.ActionItems[1].Owner)
	require.Len(t, found.KeyDecisions, 1)
	assert.Equal(t, "after QA sign-off", *found.KeyDecisions[0].Context)
}

func TestAnalysisRepository_FindByIDMissing(t *testing.T) {
	repo := NewAnalysisRepository(newTestDB(t))

	found, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestAnalysisRepository_ListAndCount(t *testing.T) {
	ctx := context.Background()
	repo := NewAnalysisRepository(newTestDB(t))

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i, title := range []string{"first", "second", "third"} {
		a := sampleAnalysis(title)
		a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, "transcript "+title, a))
		ids = append(ids, a.ID)
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	page, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].ID)
	assert.Equal(t, ids[1], page[1].ID)
	assert.Empty(t, page[0].ActionItems)

	page, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[0], page[0].ID)

	page, err = repo.List(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestAnalysisRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAnalysisRepository(db)

	analysis := sampleAnalysis("to delete")
	require.NoError(t, repo.Create(ctx, "bye", analysis))

	found, err := repo.Delete(ctx, analysis.ID)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := repo.FindByID(ctx, analysis.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	var remaining int64
	require.NoError(t, db.Model(&entities.ActionItem{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
	require.NoError(t, db.Model(&entities.Transcript{}).Count(&remaining).Error)
	assert.Zero(t, remaining)

	found, err = repo.Delete(ctx, analysis.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
