// File: /services/story_service.go
package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripjournal-api/apperrors"
	"tripjournal-api/models"
	"tripjournal-api/repositories"
)

// mediaDeleteTimeout bounds each object delete during a cascade so one
// stuck gateway call cannot wedge the whole story deletion.
const mediaDeleteTimeout = 10 * time.Second

// MediaStore is the slice of the media gateway the story lifecycle
// needs. MediaService implements it against MinIO.
type MediaStore interface {
	Delete(ctx context.Context, key string) error
}

// StoryService orchestrates story creation, full update and cascading
// deletion, delegating child-set diffing to ReconcileChildren.
type StoryService struct {
	storyRepo    *repositories.StoryRepository
	locationRepo *repositories.LocationRepository
	routeRepo    *repositories.RouteRepository
	media        MediaStore
}

func NewStoryService(
	storyRepo *repositories.StoryRepository,
	locationRepo *repositories.LocationRepository,
	routeRepo *repositories.RouteRepository,
	media MediaStore,
) *StoryService {
	return &StoryService{
		storyRepo:    storyRepo,
		locationRepo: locationRepo,
		routeRepo:    routeRepo,
		media:        media,
	}
}

// Create persists the submitted locations and routes first, then the
// story record referencing them. A story needs at least one location.
func (s *StoryService) Create(userID string, req models.CreateStoryRequest) (*models.Story, error) {
	if len(req.Locations) == 0 {
		return nil, apperrors.NewValidation("story must have at least one location")
	}

	storyID := uuid.New().String()

	locations := make([]models.Location, 0, len(req.Locations))
	for _, in := range req.Locations {
		location := in.Model(uuid.New().String(), storyID)
		if err := s.locationRepo.Create(&location); err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	routes := make([]models.Route, 0, len(req.Routes))
	for _, in := range req.Routes {
		route := in.Model(uuid.New().String(), storyID)
		if err := s.routeRepo.Create(&route); err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	story := &models.Story{
		ID:          storyID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Countries:   countriesOf(locations),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Currency:    req.Currency,
	}
	if err := s.storyRepo.Create(story); err != nil {
		return nil, err
	}

	story.Locations = locations
	story.Routes = routes
	return story, nil
}

// Update patches the story's scalar fields and reconciles whichever
// child collections the payload carries. A nil collection means "no
// change"; an empty one deletes every child of that kind.
func (s *StoryService) Update(storyID string, req models.UpdateStoryRequest) (*models.Story, error) {
	if _, err := s.storyRepo.FindByID(storyID); err != nil {
		return nil, err
	}

	if patch := req.ScalarPatch(); len(patch) > 0 {
		if _, err := s.storyRepo.UpdateByID(storyID, patch); err != nil {
			return nil, err
		}
	}

	locationsChanged := false
	if req.Locations != nil {
		existing, err := s.locationRepo.FindByStory(storyID)
		if err != nil {
			return nil, err
		}
		desired := desiredLocations(storyID, *req.Locations)
		if _, err := ReconcileChildren[models.Location](s.locationRepo, locationIDs(existing), desired); err != nil {
			return nil, err
		}
		locationsChanged = true
	}

	if req.Routes != nil {
		existing, err := s.routeRepo.FindByStory(storyID)
		if err != nil {
			return nil, err
		}
		desired := desiredRoutes(storyID, *req.Routes)
		if _, err := ReconcileChildren[models.Route](s.routeRepo, routeIDs(existing), desired); err != nil {
			return nil, err
		}
	}

	if locationsChanged {
		locations, err := s.locationRepo.FindByStory(storyID)
		if err != nil {
			return nil, err
		}
		patch := map[string]interface{}{"countries": countriesOf(locations)}
		if _, err := s.storyRepo.UpdateByID(storyID, patch); err != nil {
			return nil, err
		}
	}

	return s.storyRepo.FindByIDExpanded(storyID)
}

// Delete cascades: every media object referenced by the story's
// locations is removed from the object store (concurrently, best
// effort), then the location and route records, then the story itself.
// Like rows referencing the story are left behind and cleaned up
// lazily; see EngagementService.GetLikedStories and jobs.LikeScrubJob.
func (s *StoryService) Delete(storyID string) error {
	story, err := s.storyRepo.FindByIDExpanded(storyID)
	if err != nil {
		return err
	}

	var keys []string
	for _, location := range story.Locations {
		keys = append(keys, location.MediaKeys()...)
	}
	s.deleteMedia(keys)

	if err := s.locationRepo.DeleteMany(locationIDs(story.Locations)); err != nil {
		return err
	}
	if err := s.routeRepo.DeleteMany(routeIDs(story.Routes)); err != nil {
		return err
	}
	return s.storyRepo.DeleteByID(storyID)
}

// GetByID returns the fully expanded story
func (s *StoryService) GetByID(storyID string) (*models.Story, error) {
	return s.storyRepo.FindByIDExpanded(storyID)
}

// GetByUser returns the user's stories, newest first
func (s *StoryService) GetByUser(userID string) ([]models.Story, error) {
	return s.storyRepo.FindByUser(userID)
}

// deleteMedia removes the given object keys concurrently. Failures are
// logged per key and never abort the cascade; a missing blob counts as
// deleted.
func (s *StoryService) deleteMedia(keys []string) {
	var wg sync.WaitGroup
	for _, key := range keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), mediaDeleteTimeout)
			defer cancel()
			if err := s.media.Delete(ctx, key); err != nil {
				log.Printf("failed to delete media object %s: %v", key, err)
			}
		}(key)
	}
	wg.Wait()
}

func desiredLocations(storyID string, inputs []models.LocationInput) []DesiredChild[models.Location] {
	desired := make([]DesiredChild[models.Location], 0, len(inputs))
	for _, in := range inputs {
		if in.ID != "" {
			desired = append(desired, DesiredChild[models.Location]{
				Update: &ChildPatch{ID: in.ID, Patch: in.Patch()},
			})
			continue
		}
		location := in.Model(uuid.New().String(), storyID)
		desired = append(desired, DesiredChild[models.Location]{Create: &location})
	}
	return desired
}

func desiredRoutes(storyID string, inputs []models.RouteInput) []DesiredChild[models.Route] {
	desired := make([]DesiredChild[models.Route], 0, len(inputs))
	for _, in := range inputs {
		if in.ID != "" {
			desired = append(desired, DesiredChild[models.Route]{
				Update: &ChildPatch{ID: in.ID, Patch: in.Patch()},
			})
			continue
		}
		route := in.Model(uuid.New().String(), storyID)
		desired = append(desired, DesiredChild[models.Route]{Create: &route})
	}
	return desired
}

func locationIDs(locations []models.Location) []string {
	ids := make([]string, 0, len(locations))
	for _, location := range locations {
		ids = append(ids, location.ID)
	}
	return ids
}

func routeIDs(routes []models.Route) []string {
	ids := make([]string, 0, len(routes))
	for _, route := range routes {
		ids = append(ids, route.ID)
	}
	return ids
}

// countriesOf derives the story's country list from its locations,
// unique and in order of first appearance.
func countriesOf(locations []models.Location) models.StringSlice {
	seen := make(map[string]bool, len(locations))
	countries := make(models.StringSlice, 0, len(locations))
	for _, location := range locations {
		if location.Country == "" || seen[location.Country] {
			continue
		}
		seen[location.Country] = true
		countries = append(countries, location.Country)
	}
	return countries
}
