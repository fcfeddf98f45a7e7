package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
)

type fakeDevelopers map[int64]models.Developer

func (f fakeDevelopers) FindByID(_ context.Context, id int64) (*models.Developer, error) {
	d, ok := f[id]
	if !ok {
		return nil, fmt.Errorf("developer %d: %w", id, errs.ErrNotFound)
	}
	return &d, nil
}

type fakeTechnologies map[string]int64

func (f fakeTechnologies) FindByName(_ context.Context, name string) (*models.Technology, error) {
	id, ok := f[name]
	if !ok {
		return nil, fmt.Errorf("technology %q: %w", name, errs.ErrNotFound)
	}
	return &models.Technology{ID: id, Name: name}, nil
}

func ptr[T any](v T) *T { return &v }

func date(t *testing.T, s string) datatypes.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestDeveloper(t *testing.T) {
	tests := []struct {
		name    string
		payload models.DeveloperPayload
		want    models.DeveloperRequest
		wantErr bool
	}{
		{
			name:    "complete",
			payload: models.DeveloperPayload{Name: ptr("Ana"), Email: ptr("ana@x.com")},
			want:    models.DeveloperRequest{Name: "Ana", Email: "ana@x.com"},
		},
		{
			name:    "empty values are present",
			payload: models.DeveloperPayload{Name: ptr(""), Email: ptr("")},
			want:    models.DeveloperRequest{},
		},
		{name: "missing name", payload: models.DeveloperPayload{Email: ptr("ana@x.com")}, wantErr: true},
		{name: "missing email", payload: models.DeveloperPayload{Name: ptr("Ana")}, wantErr: true},
		{name: "empty payload", payload: models.DeveloperPayload{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Developer(tt.payload)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.IsMissingRequiredFieldError(err))
				assert.Equal(t, errs.KindValidation, errs.KindOf(err))
				assert.Equal(t, "Required keys are: name, email", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeveloperUpdate(t *testing.T) {
	stored := models.Developer{ID: 1, Name: "Ana", Email: "ana@x.com"}

	t.Run("merges a single field and keeps the others", func(t *testing.T) {
		got, err := DeveloperUpdate(stored, models.DeveloperPayload{Name: ptr("Ana Maria")})
		require.NoError(t, err)
		assert.Equal(t, models.DeveloperRequest{Name: "Ana Maria", Email: "ana@x.com"}, got)
	})

	t.Run("rejects id", func(t *testing.T) {
		p := decode[models.DeveloperPayload](t, `{"id": 5, "name": "x"}`)
		_, err := DeveloperUpdate(stored, p)
		require.Error(t, err)
		assert.True(t, errs.IsImmutableFieldError(err))
		assert.Equal(t, "Id is not editable.", err.Error())
	})

	t.Run("null id is not an id", func(t *testing.T) {
		p := decode[models.DeveloperPayload](t, `{"id": null, "email": "b@x.com"}`)
		got, err := DeveloperUpdate(stored, p)
		require.NoError(t, err)
		assert.Equal(t, "b@x.com", got.Email)
	})

	t.Run("rejects a payload without updatable keys", func(t *testing.T) {
		p := decode[models.DeveloperPayload](t, `{"nickname": "ana"}`)
		_, err := DeveloperUpdate(stored, p)
		require.Error(t, err)
		assert.True(t, errs.IsNoUpdatableFieldError(err))

		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, []string{"name", "email"}, apiErr.Keys)
	})
}

func TestDeveloperInfo(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		got, err := DeveloperInfo(models.DeveloperInfoPayload{
			DeveloperSince: ptr("2013-01-01"),
			PreferredOS:    ptr("Linux"),
		})
		require.NoError(t, err)
		assert.Equal(t, "2013-01-01", models.FormatDate(got.DeveloperSince))
		assert.Equal(t, "Linux", got.PreferredOS)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := DeveloperInfo(models.DeveloperInfoPayload{PreferredOS: ptr("Linux")})
		require.Error(t, err)
		assert.Equal(t, "Required keys are: developerSince, preferredOS", err.Error())
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := DeveloperInfo(models.DeveloperInfoPayload{
			DeveloperSince: ptr("last year"),
			PreferredOS:    ptr("Linux"),
		})
		require.Error(t, err)
		assert.True(t, errs.IsInvalidFieldError(err))
	})
}

func TestDeveloperInfoUpdate(t *testing.T) {
	stored := models.DeveloperInfo{ID: 5, DeveloperSince: date(t, "2013-01-01"), PreferredOS: "Windows"}

	got, err := DeveloperInfoUpdate(stored, models.DeveloperInfoPayload{PreferredOS: ptr("MacOS")})
	require.NoError(t, err)
	assert.Equal(t, "2013-01-01", models.FormatDate(got.DeveloperSince))
	assert.Equal(t, "MacOS", got.PreferredOS)

	_, err = DeveloperInfoUpdate(stored, models.DeveloperInfoPayload{})
	assert.True(t, errs.IsNoUpdatableFieldError(err))
}

func TestProject(t *testing.T) {
	ctx := context.Background()
	developers := fakeDevelopers{1: {ID: 1, Name: "Ana", Email: "ana@x.com"}}

	complete := func() models.ProjectPayload {
		return models.ProjectPayload{
			Name:          ptr("Kenzie"),
			Description:   ptr("portfolio"),
			EstimatedTime: ptr("2 weeks"),
			Repository:    ptr("https://example.com/repo"),
			StartDate:     ptr("2023-01-10"),
			DeveloperID:   ptr(int64(1)),
		}
	}

	t.Run("endDate defaults to null", func(t *testing.T) {
		got, err := Project(ctx, developers, complete())
		require.NoError(t, err)
		assert.Nil(t, got.EndDate)
		assert.Equal(t, int64(1), got.DeveloperID)
	})

	t.Run("empty endDate is null", func(t *testing.T) {
		p := complete()
		p.EndDate = models.Some("")
		got, err := Project(ctx, developers, p)
		require.NoError(t, err)
		assert.Nil(t, got.EndDate)
	})

	t.Run("endDate kept when given", func(t *testing.T) {
		p := complete()
		p.EndDate = models.Some("2023-02-01")
		got, err := Project(ctx, developers, p)
		require.NoError(t, err)
		require.NotNil(t, got.EndDate)
		assert.Equal(t, "2023-02-01", models.FormatDate(*got.EndDate))
	})

	t.Run("missing key lists every required key", func(t *testing.T) {
		p := complete()
		p.Repository = nil
		_, err := Project(ctx, developers, p)
		require.Error(t, err)

		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, errs.KindValidation, apiErr.Kind)
		assert.Equal(t, ProjectKeys(), apiErr.Keys)
	})

	t.Run("unknown developer is a referential failure", func(t *testing.T) {
		p := complete()
		p.DeveloperID = ptr(int64(999))
		_, err := Project(ctx, developers, p)
		require.Error(t, err)
		assert.True(t, errs.IsReferentialError(err))
		assert.Equal(t, "Developer not found.", err.Error())
	})

	t.Run("lookup failures pass through", func(t *testing.T) {
		_, err := Project(ctx, failingDevelopers{}, complete())
		require.Error(t, err)
		assert.False(t, errs.IsReferentialError(err))
	})
}

type failingDevelopers struct{}

func (failingDevelopers) FindByID(context.Context, int64) (*models.Developer, error) {
	return nil, fmt.Errorf("connection refused")
}

func TestProjectUpdate(t *testing.T) {
	ctx := context.Background()
	developers := fakeDevelopers{1: {ID: 1}, 2: {ID: 2}}
	end := date(t, "2023-03-01")
	stored := models.Project{
		ID:            7,
		Name:          "Kenzie",
		Description:   "portfolio",
		EstimatedTime: "2 weeks",
		Repository:    "https://example.com/repo",
		StartDate:     date(t, "2023-01-10"),
		EndDate:       &end,
		DeveloperID:   1,
	}

	t.Run("merge keeps untouched fields", func(t *testing.T) {
		got, err := ProjectUpdate(ctx, developers, stored, models.ProjectPayload{Name: ptr("Renamed")})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, stored.Description, got.Description)
		assert.Equal(t, stored.EstimatedTime, got.EstimatedTime)
		assert.Equal(t, stored.Repository, got.Repository)
		assert.Equal(t, "2023-01-10", models.FormatDate(got.StartDate))
		require.NotNil(t, got.EndDate)
		assert.Equal(t, "2023-03-01", models.FormatDate(*got.EndDate))
		assert.Equal(t, stored.DeveloperID, got.DeveloperID)
	})

	t.Run("explicit null clears endDate", func(t *testing.T) {
		p := decode[models.ProjectPayload](t, `{"endDate": null}`)
		got, err := ProjectUpdate(ctx, developers, stored, p)
		require.NoError(t, err)
		assert.Nil(t, got.EndDate)
	})

	t.Run("moving to another developer is checked", func(t *testing.T) {
		_, err := ProjectUpdate(ctx, developers, stored, models.ProjectPayload{DeveloperID: ptr(int64(3))})
		assert.True(t, errs.IsReferentialError(err))

		got, err := ProjectUpdate(ctx, developers, stored, models.ProjectPayload{DeveloperID: ptr(int64(2))})
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.DeveloperID)
	})

	t.Run("rejects id", func(t *testing.T) {
		p := decode[models.ProjectPayload](t, `{"id": 9}`)
		_, err := ProjectUpdate(ctx, developers, stored, p)
		assert.True(t, errs.IsImmutableFieldError(err))
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		_, err := ProjectUpdate(ctx, developers, stored, models.ProjectPayload{})
		assert.True(t, errs.IsNoUpdatableFieldError(err))
	})
}

func TestTechnology(t *testing.T) {
	for _, name := range models.TechnologyCatalog {
		got, err := Technology(models.TechnologyPayload{Name: ptr(name)})
		require.NoError(t, err, name)
		assert.Equal(t, name, got)
	}

	_, err := Technology(models.TechnologyPayload{})
	assert.True(t, errs.IsMissingRequiredFieldError(err))

	for _, name := range []string{"Ruby", "javascript", "Go", " React"} {
		_, err := Technology(models.TechnologyPayload{Name: ptr(name)})
		require.Error(t, err, name)
		assert.True(t, errs.IsUnsupportedValueError(err))

		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, models.TechnologyCatalog, apiErr.Options)
	}
}

func TestProjectTechnology(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	technologies := fakeTechnologies{"Python": 2}

	got, err := ProjectTechnology(ctx, technologies, 7, "Python", now)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectTechnologyRequest{AddedIn: now, ProjectID: 7, TechnologyID: 2}, got)

	_, err = ProjectTechnology(ctx, technologies, 7, "React", now)
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	_, err = ProjectTechnology(ctx, technologies, 7, "Ruby", now)
	assert.True(t, errs.IsUnsupportedValueError(err))
}
