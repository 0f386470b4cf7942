package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"playday/models"
)

// PlaceholderImageURL is substituted for any activity whose lookup fails.
const PlaceholderImageURL = "https://placehold.co/600x400?text=PlayDay"

const imageCachePrefix = "img:"

// LookupService resolves a representative image for each itinerary activity.
type LookupService interface {
	AttachImages(ctx context.Context, activities []models.Activity) []models.Activity
}

const defaultSearchEndpoint = "https://www.googleapis.com/customsearch/v1"

// GoogleImageService queries the Google Custom Search JSON API for activity
// images and caches results in Redis keyed by activity ID for the session.
type GoogleImageService struct {
	APIKey     string
	CX         string
	Endpoint   string
	HTTPClient *http.Client
	Cache      *redis.Client
	CacheTTL   time.Duration
	Workers    int
	Logger     *zap.Logger
}

func NewGoogleImageService(apiKey, cx string, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *GoogleImageService {
	return &GoogleImageService{
		APIKey:     apiKey,
		CX:         cx,
		Endpoint:   defaultSearchEndpoint,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Cache:      cache,
		CacheTTL:   cacheTTL,
		Workers:    4,
		Logger:     logger,
	}
}

// AttachImages fans out one lookup per activity across a bounded set of
// workers and joins before returning. Each lookup's failure is isolated: the
// activity gets the placeholder image and the batch continues.
func (s *GoogleImageService) AttachImages(ctx context.Context, activities []models.Activity) []models.Activity {
	out := make([]models.Activity, len(activities))
	copy(out, activities)

	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := range out {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			imageURL, err := s.lookupCached(ctx, out[idx].ID, out[idx].Title)
			if err != nil {
				s.Logger.Warn("image lookup failed, using placeholder",
					zap.String("activity", out[idx].Title),
					zap.Error(err),
				)
				imageURL = PlaceholderImageURL
			}
			out[idx].ImageURL = imageURL
		}(i)
	}
	wg.Wait()

	return out
}

// lookupCached consults the session image cache before hitting the API.
func (s *GoogleImageService) lookupCached(ctx context.Context, activityID, title string) (string, error) {
	key := imageCachePrefix + activityID
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	imageURL, err := s.lookup(ctx, title)
	if err != nil {
		return "", err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, imageURL, s.CacheTTL).Err(); err != nil {
			s.Logger.Warn("failed to cache image URL", zap.String("key", key), zap.Error(err))
		}
	}
	return imageURL, nil
}

type imageSearchResponse struct {
	Items []struct {
		Link string `json:"link"`
	} `json:"items"`
}

// lookup performs one Custom Search image query for the activity title.
func (s *GoogleImageService) lookup(ctx context.Context, title string) (string, error) {
	if s.APIKey == "" || s.CX == "" {
		return "", fmt.Errorf("image search not configured")
	}

	base := s.Endpoint
	if base == "" {
		base = defaultSearchEndpoint
	}
	endpoint := fmt.Sprintf(
		"%s?key=%s&cx=%s&searchType=image&num=1&q=%s",
		base, url.QueryEscape(s.APIKey), url.QueryEscape(s.CX), url.QueryEscape(title+" London"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building image search request: %w", err)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image search returned status %d", resp.StatusCode)
	}

	var searchResp imageSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return "", fmt.Errorf("decoding image search response: %w", err)
	}
	if len(searchResp.Items) == 0 {
		return "", fmt.Errorf("no image found for %q", title)
	}
	return searchResp.Items[0].Link, nil
}
