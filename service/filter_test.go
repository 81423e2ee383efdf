package service

import (
	"errors"
	"testing"

	"voteboard/models"
	"voteboard/types"
)

var (
	parseStatuses = []*models.Status{
		{ID: 1, Name: "Open", Classes: "bg-gray-200"},
		{ID: 2, Name: "Considering", Classes: "bg-purple text-white"},
		{ID: 3, Name: "In Progress", Classes: "bg-yellow text-white"},
	}
	parseCategories = []*models.Category{
		{ID: 1, Name: "Category 1"},
		{ID: 2, Name: "Category 2"},
	}
)

func TestParseFeedFilter_Default(t *testing.T) {
	f, err := ParseFeedFilter(types.FeedQuery{}, types.Caller{}, parseStatuses, parseCategories)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Mode != types.FilterNone || f.Page != 1 {
		t.Fatalf("empty query should be unfiltered page 1, got mode=%d page=%d", f.Mode, f.Page)
	}
}

func TestParseFeedFilter_AllIdeasLabel(t *testing.T) {
	f, err := ParseFeedFilter(types.FeedQuery{Filter: types.FilterLabelAll}, types.Caller{}, parseStatuses, parseCategories)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Mode != types.FilterNone {
		t.Fatalf("All Ideas must behave as no filter")
	}
}

func TestParseFeedFilter_StatusByName(t *testing.T) {
	f, err := ParseFeedFilter(types.FeedQuery{Filter: "Considering"}, types.Caller{}, parseStatuses, parseCategories)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Mode != types.FilterStatus || f.StatusID != 2 || f.StatusName != "Considering" {
		t.Fatalf("status name should resolve to status filter, got %+v", f)
	}
}

func TestParseFeedFilter_StatusParamFallback(t *testing.T) {
	f, err := ParseFeedFilter(types.FeedQuery{Status: "Open"}, types.Caller{}, parseStatuses, parseCategories)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Mode != types.FilterStatus || f.StatusID != 1 {
		t.Fatalf("status param should act like filter param")
	}
}

func TestParseFeedFilter_UnknownFilterIsNoop(t *testing.T) {
	f, err := ParseFeedFilter(types.FeedQuery{Filter: "No Such Status"}, types.Caller{}, parseStatuses, parseCategories)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Mode != types.FilterNone {
		t.Fatalf("unknown filter value must not filter anything")
	}
}

func TestParseFeedFilter_MyIdeasRequiresLogin(t *testing.T) {
	_, err := ParseFeedFilter(types.FeedQuery{Filter: types.FilterLabelMyIdeas}, types.Caller{}, parseStatuses, parseCategories)
	if !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("anonymous My Ideas: want ErrLoginRequired, got %v", err)
	}

	f, err := ParseFeedFilter(types.FeedQuery{Filter: types.FilterLabelMyIdeas}, types.Caller{ID: 7}, parseStatuses, parseCategories)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Mode != types.FilterMyIdeas {
		t.Fatalf("logged-in My Ideas should parse")
	}
}

func TestParseFeedFilter_SpamViewsAdminOnly(t *testing.T) {
	for _, label := range []string{types.FilterLabelSpamIdeas, types.FilterLabelSpamComments} {
		_, err := ParseFeedFilter(types.FeedQuery{Filter: label}, types.Caller{ID: 7}, parseStatuses, parseCategories)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("%s for non-admin: want ErrForbidden, got %v", label, err)
		}

		f, err := ParseFeedFilter(types.FeedQuery{Filter: label}, types.Caller{ID: 1, IsAdmin: true}, parseStatuses, parseCategories)
		if err != nil {
			t.Fatalf("%s for admin: %v", label, err)
		}
		if f.Mode != types.FilterSpamIdeas && f.Mode != types.FilterSpamComments {
			t.Fatalf("%s should parse for admin", label)
		}
	}
}

func TestParseFeedFilter_ShortSearchRetainedButInert(t *testing.T) {
	f, err := ParseFeedFilter(types.FeedQuery{Search: "ab"}, types.Caller{}, parseStatuses, parseCategories)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Search != "" {
		t.Fatalf("two-character search must not take effect")
	}
	if f.RawSearch != "ab" {
		t.Fatalf("raw input should be retained for echo, got %q", f.RawSearch)
	}

	f, err = ParseFeedFilter(types.FeedQuery{Search: "abc"}, types.Caller{}, parseStatuses, parseCategories)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Search != "abc" {
		t.Fatalf("three-character search should take effect")
	}
}

func TestParseFeedFilter_DimensionsResetInExclusiveModes(t *testing.T) {
	q := types.FeedQuery{Filter: types.FilterLabelTopVoted, Category: "Category 1", Search: "anything"}
	f, err := ParseFeedFilter(q, types.Caller{}, parseStatuses, parseCategories)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.CategoryID != 0 || f.Search != "" || f.RawSearch != "" {
		t.Fatalf("exclusive mode must drop category and search, got %+v", f)
	}
}

func TestParseFeedFilter_DimensionsLayerOnMyIdeas(t *testing.T) {
	q := types.FeedQuery{Filter: types.FilterLabelMyIdeas, Category: "Category 2", Search: "desk"}
	f, err := ParseFeedFilter(q, types.Caller{ID: 7}, parseStatuses, parseCategories)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Mode != types.FilterMyIdeas || f.CategoryID != 2 || f.Search != "desk" {
		t.Fatalf("category and search should layer on My Ideas, got %+v", f)
	}
}

func TestParseFeedFilter_UnknownCategoryIgnored(t *testing.T) {
	f, err := ParseFeedFilter(types.FeedQuery{Category: "No Such Category"}, types.Caller{}, parseStatuses, parseCategories)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.CategoryID != 0 || f.CategoryName != "" {
		t.Fatalf("unknown category name must be ignored")
	}
}

func TestFeedFilterQueryStringDeterministic(t *testing.T) {
	f := &types.FeedFilter{
		Mode:         types.FilterMyIdeas,
		CategoryName: "Category 1",
		RawSearch:    "desk",
		Search:       "desk",
		Page:         2,
	}
	want := "category=Category+1&filter=My+Ideas&page=2&search=desk"
	if got := f.QueryString(); got != want {
		t.Fatalf("query string: got %q, want %q", got, want)
	}
	// 状态模式下 filter 携带状态名
	f = &types.FeedFilter{Mode: types.FilterStatus, StatusName: "In Progress", Page: 1}
	want = "filter=In+Progress&page=1"
	if got := f.QueryString(); got != want {
		t.Fatalf("query string: got %q, want %q", got, want)
	}
}
