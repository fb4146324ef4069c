package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/expensetracker/internal/models"
	"github.com/mmynk/expensetracker/internal/storage"
	"github.com/mmynk/expensetracker/pkg/api"
	"github.com/mmynk/expensetracker/pkg/api/apiconnect"
)

// ParticipantService implements the Connect ParticipantService
type ParticipantService struct {
	apiconnect.UnimplementedParticipantServiceHandler
	store storage.Store
}

// NewParticipantService creates a new ParticipantService with the given storage backend.
func NewParticipantService(store storage.Store) *ParticipantService {
	return &ParticipantService{store: store}
}

// CreateParticipant adds an active participant.
func (s *ParticipantService) CreateParticipant(ctx context.Context, req *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error) {
	slog.Info("CreateParticipant request received", "name", req.Msg.Name)

	p := &models.Participant{
		Name:   req.Msg.Name,
		Email:  req.Msg.Email,
		Active: true,
	}
	if err := p.Validate(); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateParticipant(ctx, p); err != nil {
		slog.Error("CreateParticipant failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Participant created", "participant_id", p.ID)

	return connect.NewResponse(&api.CreateParticipantResponse{
		Participant: participantToAPI(p),
	}), nil
}

// ListParticipants returns participants ordered by name.
func (s *ParticipantService) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	participants, err := s.store.ListParticipants(ctx, req.Msg.ActiveOnly)
	if err != nil {
		slog.Error("ListParticipants failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*api.Participant, len(participants))
	for i, p := range participants {
		out[i] = participantToAPI(p)
	}

	return connect.NewResponse(&api.ListParticipantsResponse{Participants: out}), nil
}

// UpdateParticipant changes the name, email or active flag of a participant.
// Deactivated participants keep their history but leave the settlement.
func (s *ParticipantService) UpdateParticipant(ctx context.Context, req *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error) {
	slog.Info("UpdateParticipant request received", "participant_id", req.Msg.ID)

	p, err := s.store.GetParticipant(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	if req.Msg.Name != nil {
		p.Name = strings.TrimSpace(*req.Msg.Name)
	}
	if req.Msg.Email != nil {
		p.Email = *req.Msg.Email
	}
	if req.Msg.Active != nil {
		p.Active = *req.Msg.Active
	}
	if err := p.Validate(); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.UpdateParticipant(ctx, p); err != nil {
		slog.Error("UpdateParticipant failed", "participant_id", p.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.UpdateParticipantResponse{
		Participant: participantToAPI(p),
	}), nil
}

// DeleteParticipant removes a participant. Their shares are deleted and the
// expenses they paid for lose their payer.
func (s *ParticipantService) DeleteParticipant(ctx context.Context, req *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error) {
	slog.Info("DeleteParticipant request received", "participant_id", req.Msg.ID)

	if err := s.store.DeleteParticipant(ctx, req.Msg.ID); err != nil {
		slog.Warn("DeleteParticipant failed", "participant_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.DeleteParticipantResponse{}), nil
}
