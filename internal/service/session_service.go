package service

import (
	"context"
	"fmt"
	"log"

	"myfragance/internal/cache"
	"myfragance/internal/config"
	"myfragance/internal/flow"
	"myfragance/internal/model"
	"myfragance/internal/recommend"
	"myfragance/internal/repository"
	"myfragance/internal/scoring"
)

// SessionService orchestrates flow sessions: it loads session state from
// Redis, applies exactly one state-machine mutation, and stores the state
// back. Scoring and ranking run off the request path once a session
// completes, always on snapshots of the session data.
type SessionService struct {
	sessionCache cache.SessionCache
	recCache     cache.RecommendationCache
	profileRepo  repository.ProfileRepo
	catalogSvc   *CatalogService
	authSvc      *AuthService
	engine       *scoring.Engine
	ranker       *recommend.Ranker
	cfg          *config.ScoringConfig
	broadcaster  Broadcaster
}

// NewSessionService creates a new session service.
func NewSessionService(
	sessionCache cache.SessionCache,
	recCache cache.RecommendationCache,
	profileRepo repository.ProfileRepo,
	catalogSvc *CatalogService,
	authSvc *AuthService,
	engine *scoring.Engine,
	ranker *recommend.Ranker,
	cfg *config.ScoringConfig,
) *SessionService {
	return &SessionService{
		sessionCache: sessionCache,
		recCache:     recCache,
		profileRepo:  profileRepo,
		catalogSvc:   catalogSvc,
		authSvc:      authSvc,
		engine:       engine,
		ranker:       ranker,
		cfg:          cfg,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events.
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// StartSession creates a session for one flow type, loads its main
// segment, and mints a session token. An empty question catalog produces a
// valid zero-question session.
func (s *SessionService) StartSession(ctx context.Context, userID, flowType string) (*model.StartSessionResponse, error) {
	if flowType != model.ProfileTypePersonal && flowType != model.ProfileTypeGift {
		return nil, fmt.Errorf("unknown flow type %q", flowType)
	}

	questions, err := s.catalogSvc.Questions(ctx, flowType)
	if err != nil {
		return nil, err
	}

	session := flow.NewSession(userID, flowType)
	machine := flow.NewMachine(session)
	machine.LoadMainSegment(questions.All())

	if err := s.sessionCache.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, err := s.authSvc.GenerateSessionToken(session.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.StartSessionResponse{
		SessionID:     session.ID,
		Token:         token,
		FlowType:      flowType,
		QuestionCount: len(session.ActiveIDs),
		FirstQuestion: machine.Current(),
	}, nil
}

// Current returns the session's current position.
func (s *SessionService) Current(ctx context.Context, sessionID string) (*model.SessionStateResponse, error) {
	machine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return stateOf(machine), nil
}

// Answer records one response. Invalid question ids are silently ignored
// by the machine; the returned state tells the client where it stands.
func (s *SessionService) Answer(ctx context.Context, sessionID string, req *model.AnswerRequest) (*model.SessionStateResponse, error) {
	machine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	machine.Answer(req.QuestionID, req.SelectedOptionIDs, req.FreeText)
	if err := s.sessionCache.Set(ctx, machine.Session()); err != nil {
		return nil, err
	}
	return stateOf(machine), nil
}

// Advance moves to the next visible question. Completing the session kicks
// off scoring and ranking in the background; the HTTP response returns
// immediately and the results arrive over the session's websocket (or via
// a later GET).
func (s *SessionService) Advance(ctx context.Context, sessionID string) (*model.SessionStateResponse, error) {
	machine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	wasCompleted := machine.IsCompleted()
	machine.Advance()
	if err := s.sessionCache.Set(ctx, machine.Session()); err != nil {
		return nil, err
	}

	if machine.IsCompleted() && !wasCompleted {
		// Snapshot everything the worker needs before leaving the request
		// goroutine: the live session must never cross this boundary.
		responses := machine.Responses()
		active := machine.ActiveQuestions()
		sess := machine.Session()
		go s.finalize(context.Background(), sess.ID, sess.UserID, sess.FlowType, responses, active)
	}
	return stateOf(machine), nil
}

// Retreat steps back to the previous answered question.
func (s *SessionService) Retreat(ctx context.Context, sessionID string) (*model.SessionStateResponse, error) {
	machine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	machine.Retreat()
	if err := s.sessionCache.Set(ctx, machine.Session()); err != nil {
		return nil, err
	}
	return stateOf(machine), nil
}

// GetResponses returns the stored responses keyed by question id.
func (s *SessionService) GetResponses(ctx context.Context, sessionID string) (map[string]model.UnifiedResponse, error) {
	machine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return machine.Responses(), nil
}

// GetProfile returns the computed profile for a completed session,
// computing it inline when the background worker has not landed yet.
func (s *SessionService) GetProfile(ctx context.Context, sessionID string) (*model.UnifiedProfile, error) {
	profile, err := s.profileRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	machine, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !machine.IsCompleted() {
		return nil, nil
	}
	sess := machine.Session()
	return s.computeAndStore(ctx, sess.ID, sess.UserID, sess.FlowType, machine.Responses(), machine.ActiveQuestions()), nil
}

// finalize runs scoring and ranking after completion. Failures degrade:
// the profile endpoint can always recompute, and the recommendation
// service falls back to popularity when the buffer is missing.
func (s *SessionService) finalize(ctx context.Context, sessionID, userID, flowType string, responses map[string]model.UnifiedResponse, active []model.Question) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic in session finalize: %v", r)
		}
	}()

	profile := s.computeAndStore(ctx, sessionID, userID, flowType, responses, active)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, "profile_ready", profile)
	}

	index, err := s.catalogSvc.Snapshot(ctx)
	if err != nil {
		log.Printf("Catalog snapshot failed for session %s: %v", sessionID, err)
		return
	}
	buffer := s.ranker.Rank(profile, index, s.cfg.CandidateBuffer)
	if err := s.recCache.SetBuffer(ctx, sessionID, buffer); err != nil {
		log.Printf("Failed to cache recommendations for session %s: %v", sessionID, err)
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSession(sessionID, "recommendations_ready", map[string]interface{}{
			"sessionId": sessionID,
			"count":     len(buffer),
		})
	}
}

func (s *SessionService) computeAndStore(ctx context.Context, sessionID, userID, flowType string, responses map[string]model.UnifiedResponse, active []model.Question) *model.UnifiedProfile {
	profile := s.engine.ComputeProfile(responses, active, flowType)
	profile.SessionID = sessionID
	profile.UserID = userID
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		log.Printf("Failed to persist profile for session %s: %v", sessionID, err)
	}
	return profile
}

func (s *SessionService) load(ctx context.Context, sessionID string) (*flow.Machine, error) {
	session, err := s.sessionCache.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("session not found")
	}
	return flow.NewMachine(session), nil
}

func stateOf(machine *flow.Machine) *model.SessionStateResponse {
	sess := machine.Session()
	return &model.SessionStateResponse{
		SessionID:       sess.ID,
		CurrentQuestion: machine.Current(),
		CurrentIndex:    sess.CurrentIndex,
		ActiveCount:     len(sess.ActiveIDs),
		AnsweredCount:   len(sess.Responses),
		CanContinue:     machine.CanContinue(),
		Completed:       machine.IsCompleted(),
	}
}
