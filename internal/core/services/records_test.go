package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openjudiciary/casedocs-core/internal/core/domain"
	"github.com/openjudiciary/casedocs-core/internal/core/ports/driven/mocks"
)

func TestRecordsService_CriminalDocuments_SyntheticROP(t *testing.T) {
	svc := NewRecordsService(mocks.NewMockCategoryLookup(), nil)

	file := domain.AccusedFile{
		PartID: "7788.0001",
		Appearances: []domain.Appearance{
			{AppearanceID: "1", AppearanceDate: "2020-01-15"},
		},
		Documents: []domain.RawDocument{
			{Category: "INITIATING", DocmID: "d1", IssueDate: "2020-01-02"},
		},
	}

	docs, err := svc.CriminalDocuments(context.Background(), file)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	rop := docs[0]
	assert.Equal(t, "rop", rop.Category)
	assert.Equal(t, "Record of Proceedings", rop.DocumentTypeDescription)
	require.NotNil(t, rop.PartID)
	assert.Equal(t, "7788.0001", *rop.PartID)

	assert.Equal(t, "INITIATING", docs[1].Category)
}

func TestRecordsService_CriminalDocuments_NoAppearancesNoROP(t *testing.T) {
	svc := NewRecordsService(mocks.NewMockCategoryLookup(), nil)

	docs, err := svc.CriminalDocuments(context.Background(), domain.AccusedFile{
		Documents: []domain.RawDocument{{Category: "BAIL", DocmID: "d1"}},
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "BAIL", docs[0].Category)
}

func TestRecordsService_CriminalDocuments_FutureAppearance(t *testing.T) {
	svc := NewRecordsService(mocks.NewMockCategoryLookup(), nil)

	future := time.Now().Add(48 * time.Hour).Format("2006-01-02")
	past := time.Now().Add(-48 * time.Hour).Format("2006-01-02")

	docs, err := svc.CriminalDocuments(context.Background(), domain.AccusedFile{
		PartID:      "p1",
		Appearances: []domain.Appearance{{AppearanceDate: future}},
		Documents:   []domain.RawDocument{{Category: "BAIL", DocmID: "d1"}},
	})
	require.NoError(t, err)
	for _, d := range docs {
		assert.True(t, d.HasFutureAppearance, "every record carries the flag")
	}

	docs, err = svc.CriminalDocuments(context.Background(), domain.AccusedFile{
		PartID:      "p1",
		Appearances: []domain.Appearance{{AppearanceDate: past}},
		Documents:   []domain.RawDocument{{Category: "BAIL", DocmID: "d1"}},
	})
	require.NoError(t, err)
	for _, d := range docs {
		assert.False(t, d.HasFutureAppearance)
	}
}

func TestRecordsService_CriminalDocuments_FutureAppearanceByCalendarDay(t *testing.T) {
	svc := NewRecordsService(mocks.NewMockCategoryLookup(), nil).(*recordsService)

	// 02:00 local on Aug 31 in UTC+10 is still Aug 30 in UTC. Yesterday's
	// appearance must not count as today.
	zone := time.FixedZone("UTC+10", 10*60*60)
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 31, 2, 0, 0, 0, zone)
	}

	docs, err := svc.CriminalDocuments(context.Background(), domain.AccusedFile{
		PartID:      "p1",
		Appearances: []domain.Appearance{{AppearanceDate: "2026-08-30"}},
		Documents:   []domain.RawDocument{{Category: "BAIL", DocmID: "d1"}},
	})
	require.NoError(t, err)
	for _, d := range docs {
		assert.False(t, d.HasFutureAppearance, "yesterday's appearance is not future")
	}

	docs, err = svc.CriminalDocuments(context.Background(), domain.AccusedFile{
		PartID:      "p1",
		Appearances: []domain.Appearance{{AppearanceDate: "2026-08-31"}},
		Documents:   []domain.RawDocument{{Category: "BAIL", DocmID: "d1"}},
	})
	require.NoError(t, err)
	for _, d := range docs {
		assert.True(t, d.HasFutureAppearance, "same calendar day counts")
	}
}

func TestRecordsService_CriminalDocuments_CategoryLookup(t *testing.T) {
	lookup := mocks.NewMockCategoryLookup()
	lookup.Set("form-12", "bail-review", "BAIL")
	svc := NewRecordsService(lookup, nil)

	docs, err := svc.CriminalDocuments(context.Background(), domain.AccusedFile{
		Documents: []domain.RawDocument{
			{DocmID: "d1", DocmFormID: "form-12", DocmClassification: "bail-review"},
			{DocmID: "d2", DocmFormID: "unknown", DocmClassification: "unknown"},
			{DocmID: "d3", Category: "INITIATING"},
		},
	})
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, "BAIL", docs[0].Category, "blank category resolved via lookup")
	assert.Equal(t, "", docs[1].Category, "unmapped category stays blank")
	assert.Equal(t, "INITIATING", docs[2].Category, "explicit category kept")
}

func TestRecordsService_CriminalDocuments_CategoryLookupWithoutIdentifiers(t *testing.T) {
	lookup := mocks.NewMockCategoryLookup()
	lookup.Set("form-9", "order", "Order")
	svc := NewRecordsService(lookup, nil)

	// A row with neither docmId nor imageId still resolves its blank
	// category; rows correspond to mapped documents by position.
	docs, err := svc.CriminalDocuments(context.Background(), domain.AccusedFile{
		PartID:      "p1",
		Appearances: []domain.Appearance{{AppearanceDate: "2020-01-15"}},
		Documents: []domain.RawDocument{
			{DocmFormID: "form-9", DocmClassification: "order"},
		},
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "rop", docs[0].Category, "synthetic entry untouched by lookup")
	assert.Equal(t, "Order", docs[1].Category)
}

func TestRecordsService_CriminalDocuments_BlankIdentifiersAreNil(t *testing.T) {
	svc := NewRecordsService(mocks.NewMockCategoryLookup(), nil)

	docs, err := svc.CriminalDocuments(context.Background(), domain.AccusedFile{
		Documents: []domain.RawDocument{{Category: "OTHER"}},
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Nil(t, docs[0].DocmID)
	assert.Nil(t, docs[0].ImageID)
	assert.Nil(t, docs[0].PartID)
}

func TestRecordsService_CriminalKeyDocuments_Empty(t *testing.T) {
	svc := NewRecordsService(mocks.NewMockCategoryLookup(), nil)

	assert.Empty(t, svc.CriminalKeyDocuments(nil))
	assert.Empty(t, svc.CriminalKeyDocuments([]domain.CriminalDocument{}))
}

func TestRecordsService_CriminalKeyDocuments_KeyCategories(t *testing.T) {
	svc := NewRecordsService(mocks.NewMockCategoryLookup(), nil)

	docs := []domain.CriminalDocument{
		{Category: "ROP"},
		{Category: "INITIATING"},
		{Category: "OTHER"},
	}

	key := svc.CriminalKeyDocuments(docs)
	require.Len(t, key, 2)
	assert.Equal(t, "ROP", key[0].Category)
	assert.Equal(t, "INITIATING", key[1].Category)
}

func TestRecordsService_CriminalKeyDocuments_MostRecentReport(t *testing.T) {
	svc := NewRecordsService(mocks.NewMockCategoryLookup(), nil)

	docs := []domain.CriminalDocument{
		{Category: "PSR", IssueDate: "2021-05-01", DocmID: stringPtr("old")},
		{Category: "PSR", IssueDate: "2023-05-01", DocmID: stringPtr("new")},
		{Category: "PSR", IssueDate: "garbled", DocmID: stringPtr("undated")},
	}

	key := svc.CriminalKeyDocuments(docs)
	require.Len(t, key, 1)
	require.NotNil(t, key[0].DocmID)
	// An unparseable date is treated as the earliest possible, so a
	// parseable one always wins.
	assert.Equal(t, "new", *key[0].DocmID)
}

func TestRecordsService_CriminalKeyDocuments_BailExcludesCancelled(t *testing.T) {
	svc := NewRecordsService(mocks.NewMockCategoryLookup(), nil)

	perfected := "Perfected"
	notPerfected := "Not Perfected"
	cancelled := "CANCELLED"

	docs := []domain.CriminalDocument{
		{Category: "BAIL", IssueDate: "2022-01-01", DispositionDescription: &notPerfected, DocmID: stringPtr("early")},
		{Category: "BAIL", IssueDate: "2023-01-01", DispositionDescription: &perfected, DocmID: stringPtr("late")},
		{Category: "BAIL", IssueDate: "2024-01-01", DispositionDescription: &cancelled, DocmID: stringPtr("dead")},
	}

	key := svc.CriminalKeyDocuments(docs)
	require.Len(t, key, 1)
	assert.Equal(t, "late", *key[0].DocmID)
}

func TestRecordsService_CriminalKeyDocuments_NilDispositionQualifies(t *testing.T) {
	svc := NewRecordsService(mocks.NewMockCategoryLookup(), nil)

	key := svc.CriminalKeyDocuments([]domain.CriminalDocument{
		{Category: "BAIL", IssueDate: "2022-01-01", DocmID: stringPtr("open")},
	})
	require.Len(t, key, 1)
	assert.Equal(t, "open", *key[0].DocmID)
}

func TestRecordsService_CriminalKeyDocuments_DisplayOrder(t *testing.T) {
	svc := NewRecordsService(mocks.NewMockCategoryLookup(), nil)

	docs := []domain.CriminalDocument{
		{Category: "BAIL", IssueDate: "2023-02-01", DocmID: stringPtr("bail")},
		{Category: "INITIATING", DocmID: stringPtr("init")},
		{Category: "psr", IssueDate: "2023-03-01", DocmID: stringPtr("report")},
		{Category: "rop", DocmID: stringPtr("rop")},
	}

	key := svc.CriminalKeyDocuments(docs)
	require.Len(t, key, 4)
	// Report first, key categories in original relative order, bail last.
	assert.Equal(t, "report", *key[0].DocmID)
	assert.Equal(t, "init", *key[1].DocmID)
	assert.Equal(t, "rop", *key[2].DocmID)
	assert.Equal(t, "bail", *key[3].DocmID)
}

func stringPtr(s string) *string {
	return &s
}
