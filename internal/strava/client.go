package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mstanic/runboard/internal/telemetry/metrics"
	"github.com/mstanic/runboard/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/oauth2"
)

// example API call
// https://www.strava.com/api/v3/athlete/activities?per_page=100

const (
	activitiesCacheKey = "activities"
	athleteCacheKey    = "athlete"
)

type NewApiParams struct {
	ApiBaseURL      string
	ClientID        string
	ClientSecret    string
	RefreshToken    string
	CacheTTLSeconds int
	// BaseHttpClient is used both for the token refresh and the API calls
	BaseHttpClient *http.Client
	MetricsManager *metrics.Manager
}

type Api struct {
	apiBaseURL      string
	httpClient      *http.Client
	cache           *freecache.Cache
	cacheTTLSeconds int
	metricsManager  *metrics.Manager
}

// NewApi creates a Strava API client. The long lived refresh token is
// exchanged for short lived access tokens by the oauth2 transport, the
// same flow the official clients use.
func NewApi(ctx context.Context, params NewApiParams) *Api {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	oauthConfig := &oauth2.Config{
		ClientID:     params.ClientID,
		ClientSecret: params.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: params.ApiBaseURL + "/oauth/token",
		},
	}

	if params.BaseHttpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, params.BaseHttpClient)
	}

	// an empty access token forces a refresh on the first use
	httpClient := oauthConfig.Client(ctx, &oauth2.Token{
		RefreshToken: params.RefreshToken,
	})

	return &Api{
		apiBaseURL:      params.ApiBaseURL,
		httpClient:      httpClient,
		cache:           freecache.NewCache(cacheSize),
		cacheTTLSeconds: params.CacheTTLSeconds,
		metricsManager:  params.MetricsManager,
	}
}

// GetActivities returns up to perPage most recent activities of the
// authenticated athlete, newest first. Responses are cached with a TTL,
// so the Strava API is not hit on every dashboard reload.
func (api *Api) GetActivities(ctx context.Context, perPage int) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stravaApi.getActivities")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("per_page", perPage))

	cacheKey := fmt.Sprintf("%s::%d", activitiesCacheKey, perPage)
	if activitiesBytes, err := api.cache.Get([]byte(cacheKey)); err == nil {
		var activities []Activity
		if err = json.Unmarshal(activitiesBytes, &activities); err == nil {
			log.Tracef("found %d activities in cache", len(activities))
			if api.metricsManager != nil {
				api.metricsManager.CounterActivityCacheHits.Inc()
			}
			return activities, nil
		}
		log.Errorf("failed to unmarshal activities from cache: %s", err)
	} else {
		log.Debugf("activities not found in cache: %s; will call the strava api", err)
	}

	activitiesUrl := fmt.Sprintf("%s/api/v3/athlete/activities?per_page=%d", api.apiBaseURL, perPage)

	respBytes, err := api.getJson(ctx, activitiesUrl)
	if err != nil {
		return nil, err
	}

	var activities []Activity
	if err := json.Unmarshal(respBytes, &activities); err != nil {
		return nil, fmt.Errorf("unmarshal activities response: %w", err)
	}

	if err := api.cache.Set([]byte(cacheKey), respBytes, api.cacheTTLSeconds); err != nil {
		log.Errorf("failed to write activities cache: %s", err)
	} else {
		log.Debugf("activities cache set, %d activities", len(activities))
	}

	return activities, nil
}

// GetAthlete returns the profile of the authenticated athlete
func (api *Api) GetAthlete(ctx context.Context) (_ *Athlete, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stravaApi.getAthlete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	athlete := &Athlete{}
	if athleteBytes, err := api.cache.Get([]byte(athleteCacheKey)); err == nil {
		if err = json.Unmarshal(athleteBytes, athlete); err == nil {
			log.Tracef("found athlete %d in cache", athlete.ID)
			if api.metricsManager != nil {
				api.metricsManager.CounterActivityCacheHits.Inc()
			}
			return athlete, nil
		}
		log.Errorf("failed to unmarshal athlete from cache: %s", err)
	}

	respBytes, err := api.getJson(ctx, api.apiBaseURL+"/api/v3/athlete")
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(respBytes, athlete); err != nil {
		return nil, fmt.Errorf("unmarshal athlete response: %w", err)
	}

	if err := api.cache.Set([]byte(athleteCacheKey), respBytes, api.cacheTTLSeconds); err != nil {
		log.Errorf("failed to write athlete cache: %s", err)
	}

	return athlete, nil
}

func (api *Api) getJson(ctx context.Context, url string) ([]byte, error) {
	log.Debugf("calling strava api: %s", url)

	if api.metricsManager != nil {
		api.metricsManager.CounterStravaFetches.Inc()
		defer func(begin time.Time) {
			api.metricsManager.HistStravaFetchDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := api.httpClient.Do(req)
	if err != nil {
		if api.metricsManager != nil {
			api.metricsManager.CounterStravaFetchErrors.Inc()
		}
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read strava api response bytes: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if api.metricsManager != nil {
			api.metricsManager.CounterStravaFetchErrors.Inc()
		}
		return nil, fmt.Errorf("strava api response status %d: %s", resp.StatusCode, respBytes)
	}

	return respBytes, nil
}
