package api

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
)

// memory is an in-memory stand-in for the five tables. It mirrors the
// storage semantics the handlers rely on: not-found errors, the unique
// email, foreign keys and cascading deletes.
type memory struct {
	mu           sync.Mutex
	nextID       int64
	developers   map[int64]*models.Developer
	infos        map[int64]*models.DeveloperInfo
	projects     map[int64]*models.Project
	technologies []models.Technology
	links        map[int64]*models.ProjectTechnology

	// failWith makes every list read fail, to exercise unclassified errors
	failWith error
	pingErr  error
	// writeErr makes inserts and updates fail as the database would
	writeErr error
}

func newMemory() *memory {
	m := &memory{
		developers: map[int64]*models.Developer{},
		infos:      map[int64]*models.DeveloperInfo{},
		projects:   map[int64]*models.Project{},
		links:      map[int64]*models.ProjectTechnology{},
	}
	for i, name := range models.TechnologyCatalog {
		m.technologies = append(m.technologies, models.Technology{ID: int64(i + 1), Name: name})
	}
	return m
}

func (m *memory) stores() stores {
	return stores{
		developers:          fakeDevelopers{m},
		developerInfos:      fakeInfos{m},
		projects:            fakeProjects{m},
		technologies:        fakeTechnologies{m},
		projectTechnologies: fakeLinks{m},
		health:              fakeHealth{m},
	}
}

func (m *memory) id() int64 {
	m.nextID++
	return m.nextID
}

func sortedKeys[T any](rows map[int64]T) []int64 {
	keys := make([]int64, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (m *memory) technologyName(id int64) string {
	for _, t := range m.technologies {
		if t.ID == id {
			return t.Name
		}
	}
	return ""
}

func (m *memory) deleteProject(id int64) {
	for linkID, link := range m.links {
		if link.ProjectID == id {
			delete(m.links, linkID)
		}
	}
	delete(m.projects, id)
}

func (m *memory) projectRows(p *models.Project) []models.ProjectDetail {
	base := models.ProjectDetail{
		ProjectID:            p.ID,
		ProjectName:          p.Name,
		ProjectDescription:   p.Description,
		ProjectEstimatedTime: p.EstimatedTime,
		ProjectRepository:    p.Repository,
		ProjectStartDate:     p.StartDate,
		ProjectEndDate:       p.EndDate,
		ProjectDeveloperID:   p.DeveloperID,
	}
	var rows []models.ProjectDetail
	for _, linkID := range sortedKeys(m.links) {
		link := m.links[linkID]
		if link.ProjectID != p.ID {
			continue
		}
		row := base
		techID, name := link.TechnologyID, m.technologyName(link.TechnologyID)
		row.TechnologyID, row.TechnologyName = &techID, &name
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		rows = append(rows, base)
	}
	return rows
}

func (m *memory) developerDetail(d *models.Developer) models.DeveloperDetail {
	detail := models.DeveloperDetail{DeveloperID: d.ID, DeveloperName: d.Name, DeveloperEmail: d.Email}
	if d.DeveloperInfosID != nil {
		if info, ok := m.infos[*d.DeveloperInfosID]; ok {
			id, since, os := info.ID, info.DeveloperSince, info.PreferredOS
			detail.DeveloperInfoID = &id
			detail.DeveloperInfoDeveloperSince = &since
			detail.DeveloperInfoPreferredOS = &os
		}
	}
	return detail
}

type fakeDevelopers struct{ m *memory }

func (f fakeDevelopers) FindByID(_ context.Context, id int64) (*models.Developer, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	d, ok := f.m.developers[id]
	if !ok {
		return nil, errs.NewEntityNotFoundError("Developer")
	}
	copied := *d
	return &copied, nil
}

func (f fakeDevelopers) FindByEmail(_ context.Context, email string) (*models.Developer, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	for _, d := range f.m.developers {
		if d.Email == email {
			copied := *d
			return &copied, nil
		}
	}
	return nil, errs.NewEntityNotFoundError("Developer")
}

func (f fakeDevelopers) FindAllDetailed(_ context.Context) ([]models.DeveloperDetail, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.m.failWith != nil {
		return nil, f.m.failWith
	}
	rows := []models.DeveloperDetail{}
	for _, id := range sortedKeys(f.m.developers) {
		rows = append(rows, f.m.developerDetail(f.m.developers[id]))
	}
	return rows, nil
}

func (f fakeDevelopers) FindDetailedByID(_ context.Context, id int64) (*models.DeveloperDetail, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	d, ok := f.m.developers[id]
	if !ok {
		return nil, errs.NewEntityNotFoundError("Developer")
	}
	detail := f.m.developerDetail(d)
	return &detail, nil
}

func (f fakeDevelopers) FindWithProjects(_ context.Context, id int64) (*models.DeveloperProjectsDetail, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	d, ok := f.m.developers[id]
	if !ok {
		return nil, errs.NewEntityNotFoundError("Developer")
	}
	base := f.m.developerDetail(d)
	row := models.DeveloperProjectsDetail{
		DeveloperID:                 base.DeveloperID,
		DeveloperName:               base.DeveloperName,
		DeveloperEmail:              base.DeveloperEmail,
		DeveloperInfoID:             base.DeveloperInfoID,
		DeveloperInfoDeveloperSince: base.DeveloperInfoDeveloperSince,
		DeveloperInfoPreferredOS:    base.DeveloperInfoPreferredOS,
	}
	for _, pid := range sortedKeys(f.m.projects) {
		p := f.m.projects[pid]
		if p.DeveloperID != id {
			continue
		}
		first := f.m.projectRows(p)[0]
		row.ProjectID = &first.ProjectID
		row.ProjectName = &first.ProjectName
		row.ProjectDescription = &first.ProjectDescription
		row.ProjectEstimatedTime = &first.ProjectEstimatedTime
		row.ProjectRepository = &first.ProjectRepository
		row.ProjectStartDate = &first.ProjectStartDate
		row.ProjectEndDate = first.ProjectEndDate
		row.ProjectDeveloperID = &first.ProjectDeveloperID
		row.TechnologyID = first.TechnologyID
		row.TechnologyName = first.TechnologyName
		break
	}
	return &row, nil
}

func (f fakeDevelopers) Add(_ context.Context, r models.DeveloperRequest) (*models.Developer, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.m.writeErr != nil {
		return nil, f.m.writeErr
	}
	for _, d := range f.m.developers {
		if d.Email == r.Email {
			return nil, errs.NewDatabaseError("create", "developer", gorm.ErrDuplicatedKey)
		}
	}
	d := &models.Developer{ID: f.m.id(), Name: r.Name, Email: r.Email}
	f.m.developers[d.ID] = d
	copied := *d
	return &copied, nil
}

func (f fakeDevelopers) Update(_ context.Context, id int64, r models.DeveloperRequest) (*models.Developer, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.m.writeErr != nil {
		return nil, f.m.writeErr
	}
	d, ok := f.m.developers[id]
	if !ok {
		return nil, errs.NewEntityNotFoundError("Developer")
	}
	d.Name, d.Email = r.Name, r.Email
	copied := *d
	return &copied, nil
}

func (f fakeDevelopers) Delete(_ context.Context, developer *models.Developer) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if _, ok := f.m.developers[developer.ID]; !ok {
		return errs.NewEntityNotFoundError("Developer")
	}
	if developer.DeveloperInfosID != nil {
		delete(f.m.infos, *developer.DeveloperInfosID)
	}
	for id, p := range f.m.projects {
		if p.DeveloperID == developer.ID {
			f.m.deleteProject(id)
		}
	}
	delete(f.m.developers, developer.ID)
	return nil
}

type fakeInfos struct{ m *memory }

func (f fakeInfos) FindByID(_ context.Context, id int64) (*models.DeveloperInfo, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	info, ok := f.m.infos[id]
	if !ok {
		return nil, errs.NewEntityNotFoundError("Developer info")
	}
	copied := *info
	return &copied, nil
}

func (f fakeInfos) AddForDeveloper(_ context.Context, developerID int64, r models.DeveloperInfoRequest) (*models.DeveloperInfo, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	d, ok := f.m.developers[developerID]
	if !ok {
		return nil, errs.NewEntityNotFoundError("Developer")
	}
	info := &models.DeveloperInfo{ID: f.m.id(), DeveloperSince: r.DeveloperSince, PreferredOS: r.PreferredOS}
	f.m.infos[info.ID] = info
	d.DeveloperInfosID = &info.ID
	copied := *info
	return &copied, nil
}

func (f fakeInfos) Update(_ context.Context, id int64, r models.DeveloperInfoRequest) (*models.DeveloperInfo, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	info, ok := f.m.infos[id]
	if !ok {
		return nil, errs.NewEntityNotFoundError("Developer info")
	}
	info.DeveloperSince, info.PreferredOS = r.DeveloperSince, r.PreferredOS
	copied := *info
	return &copied, nil
}

type fakeProjects struct{ m *memory }

func (f fakeProjects) FindByID(_ context.Context, id int64) (*models.Project, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	p, ok := f.m.projects[id]
	if !ok {
		return nil, errs.NewEntityNotFoundError("Project")
	}
	copied := *p
	return &copied, nil
}

func (f fakeProjects) FindAllDetailed(_ context.Context) ([]models.ProjectDetail, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.m.failWith != nil {
		return nil, f.m.failWith
	}
	rows := []models.ProjectDetail{}
	for _, id := range sortedKeys(f.m.projects) {
		rows = append(rows, f.m.projectRows(f.m.projects[id])...)
	}
	return rows, nil
}

func (f fakeProjects) FindDetailedByID(_ context.Context, id int64) ([]models.ProjectDetail, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	p, ok := f.m.projects[id]
	if !ok {
		return []models.ProjectDetail{}, nil
	}
	return f.m.projectRows(p), nil
}

func (f fakeProjects) Add(_ context.Context, r models.ProjectRequest) (*models.Project, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.m.writeErr != nil {
		return nil, f.m.writeErr
	}
	if _, ok := f.m.developers[r.DeveloperID]; !ok {
		return nil, errs.NewReferentialError("Developer")
	}
	p := &models.Project{
		ID:            f.m.id(),
		Name:          r.Name,
		Description:   r.Description,
		EstimatedTime: r.EstimatedTime,
		Repository:    r.Repository,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		DeveloperID:   r.DeveloperID,
	}
	f.m.projects[p.ID] = p
	copied := *p
	return &copied, nil
}

func (f fakeProjects) Update(_ context.Context, id int64, r models.ProjectRequest) (*models.Project, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.m.writeErr != nil {
		return nil, f.m.writeErr
	}
	p, ok := f.m.projects[id]
	if !ok {
		return nil, errs.NewEntityNotFoundError("Project")
	}
	p.Name, p.Description, p.EstimatedTime, p.Repository = r.Name, r.Description, r.EstimatedTime, r.Repository
	p.StartDate, p.EndDate, p.DeveloperID = r.StartDate, r.EndDate, r.DeveloperID
	copied := *p
	return &copied, nil
}

func (f fakeProjects) Delete(_ context.Context, id int64) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if _, ok := f.m.projects[id]; !ok {
		return errs.NewEntityNotFoundError("Project")
	}
	f.m.deleteProject(id)
	return nil
}

type fakeTechnologies struct{ m *memory }

func (f fakeTechnologies) FindByName(_ context.Context, name string) (*models.Technology, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	for _, t := range f.m.technologies {
		if t.Name == name {
			copied := t
			return &copied, nil
		}
	}
	return nil, errs.NewEntityNotFoundError("Technology")
}

func (f fakeTechnologies) FindAll(_ context.Context) ([]models.Technology, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	return append([]models.Technology{}, f.m.technologies...), nil
}

type fakeLinks struct{ m *memory }

func (f fakeLinks) FindLink(_ context.Context, projectID, technologyID int64) (*models.ProjectTechnology, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	for _, link := range f.m.links {
		if link.ProjectID == projectID && link.TechnologyID == technologyID {
			copied := *link
			return &copied, nil
		}
	}
	return nil, errs.NewEntityNotFoundError("Project technology")
}

func (f fakeLinks) FindByName(_ context.Context, projectID int64, name string) (*models.ProjectTechnology, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	for _, link := range f.m.links {
		if link.ProjectID == projectID && f.m.technologyName(link.TechnologyID) == name {
			copied := *link
			return &copied, nil
		}
	}
	return nil, errs.NewEntityNotFoundError("Project technology")
}

func (f fakeLinks) Add(_ context.Context, r models.ProjectTechnologyRequest) (*models.ProjectTechnology, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.m.writeErr != nil {
		return nil, f.m.writeErr
	}
	link := &models.ProjectTechnology{ID: f.m.id(), AddedIn: r.AddedIn, ProjectID: r.ProjectID, TechnologyID: r.TechnologyID}
	f.m.links[link.ID] = link
	copied := *link
	return &copied, nil
}

func (f fakeLinks) Delete(_ context.Context, id int64) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if _, ok := f.m.links[id]; !ok {
		return errs.NewEntityNotFoundError("Project technology")
	}
	delete(f.m.links, id)
	return nil
}

type fakeHealth struct{ m *memory }

func (f fakeHealth) Ping(context.Context) error {
	return f.m.pingErr
}
