package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/ace-tracker/internal/pubsub"
	"github.com/mauv0809/ace-tracker/internal/rankings"
	"github.com/mauv0809/ace-tracker/internal/tennis"
	"github.com/slack-go/slack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ListPlayersHandler serves every player, or the first N with ?top=N.
func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topStr := r.URL.Query().Get("top")
		if topStr == "" {
			respondWithJSON(w, http.StatusOK, s.Rankings.ListPlayers(r.Context()))
			return
		}

		top, err := strconv.Atoi(topStr)
		if err != nil {
			log.Warn("Invalid 'top' parameter", "top", topStr)
			respondWithError(w, http.StatusBadRequest, "top must be an integer")
			return
		}
		respondWithJSON(w, http.StatusOK, s.Rankings.ListTopPlayers(r.Context(), top))
	}
}

func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		player, ok := s.Rankings.GetPlayer(r.Context(), id)
		if !ok {
			respondWithError(w, http.StatusNotFound, fmt.Sprintf("player %s not found", id))
			return
		}
		respondWithJSON(w, http.StatusOK, player)
	}
}

// PlayerMatchesHandler serves a player's history, newest first. Unknown ids
// get an empty list.
func (s *Server) PlayerMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, s.Rankings.GetPlayerMatches(r.Context(), r.PathValue("id")))
	}
}

func (s *Server) PlayerSummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		summary, ok := s.Rankings.GetPlayerSummary(r.Context(), id)
		if !ok {
			respondWithError(w, http.StatusNotFound, fmt.Sprintf("player %s not found", id))
			return
		}
		respondWithJSON(w, http.StatusOK, summary)
	}
}

// InvalidateCacheHandler clears the local cache and tells the other instances to do the same.
func (s *Server) InvalidateCacheHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reason := r.URL.Query().Get("reason")
		event := pubsub.NewInvalidationEvent(s.Cfg.InstanceID, reason)
		log.Info("Invalidating rankings cache", "event_id", event.ID, "reason", reason)

		s.Rankings.InvalidateCache()

		resp := invalidateResponse{EventID: event.ID}
		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would have published invalidation", "event_id", event.ID)
		} else if err := s.pubsub.SendMessage(r.Context(), s.Cfg.InvalidationTopic, event); err != nil {
			log.Error("Failed to publish invalidation", "error", err, "event_id", event.ID)
		} else {
			resp.Published = true
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

// PubSubInvalidateHandler is the push endpoint for invalidation events.
func (s *Server) PubSubInvalidateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received invalidation message", "body", string(bodyBytes))

		rawData, err := pubsub.DecodePush(bodyBytes)
		if err != nil {
			log.Error("Failed to decode push message", "error", err)
			http.Error(w, "Invalid push message", http.StatusBadRequest)
			return
		}

		var event pubsub.InvalidationEvent
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			http.Error(w, "Invalid event payload", http.StatusBadRequest)
			return
		}

		if event.Origin == s.Cfg.InstanceID {
			log.Debug("Ignoring own invalidation event", "event_id", event.ID)
			w.Write([]byte("OK"))
			return
		}

		log.Info("Invalidating rankings cache from event", "event_id", event.ID, "origin", event.Origin, "reason", event.Reason)
		s.Rankings.InvalidateCache()
		w.Write([]byte("OK"))
	}
}

// NotifyLeaderboardHandler posts the current top players to Slack.
func (s *Server) NotifyLeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := rankings.DefaultTopCount
		if countStr := r.URL.Query().Get("count"); countStr != "" {
			parsed, err := strconv.Atoi(countStr)
			if err != nil || parsed <= 0 {
				log.Warn("Invalid 'count' parameter provided. Using default.", "count_param", countStr)
			} else {
				count = parsed
			}
		}

		players := s.Rankings.ListTopPlayers(r.Context(), count)
		if err := s.Notifier.SendLeaderboard(players, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send leaderboard", "error", err)
			http.Error(w, "Failed to send leaderboard", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Leaderboard sent with %d players.", len(players))
	}
}

// NotifyPlayerHandler posts one player's summary to Slack. The id query
// parameter accepts a player id or name.
func (s *Server) NotifyPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("id"))
		if query == "" {
			respondWithError(w, http.StatusBadRequest, "id is required")
			return
		}
		dryRun := isDryRunFromContext(r)

		player, ok := findPlayer(r.Context(), s.Rankings, query)
		if !ok {
			log.Warn("Could not find player to notify", "player", query)
			if err := s.Notifier.SendPlayerNotFound(query, dryRun); err != nil {
				log.Error("Failed to send player not found", "error", err)
				http.Error(w, "Failed to send notification", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, "Player %s not found.", query)
			return
		}

		summary, _ := s.Rankings.GetPlayerSummary(r.Context(), player.ID)
		if err := s.Notifier.SendPlayerSummary(summary, dryRun); err != nil {
			log.Error("Failed to send player summary", "error", err, "player_id", player.ID)
			http.Error(w, "Failed to send notification", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Summary sent for %s.", player.Name)
	}
}

// ArchiveStatusHandler reports the size of the archived export and its last import.
func (s *Server) ArchiveStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Archive == nil {
			respondWithError(w, http.StatusNotFound, "archive is not configured")
			return
		}

		count, err := s.Archive.Count(r.Context())
		if err != nil {
			log.Error("Failed to count archived matches", "error", err)
			respondWithError(w, http.StatusInternalServerError, "failed to read archive")
			return
		}
		resp := archiveStatusResponse{Records: count}

		last, ok, err := s.Archive.LastImport(r.Context())
		if err != nil {
			log.Error("Failed to read last import", "error", err)
			respondWithError(w, http.StatusInternalServerError, "failed to read archive")
			return
		}
		if ok {
			resp.LastImport = &last
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

func respondWithJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response to JSON", "error", err)
	}
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, errorResponse{Error: message})
}

// LeaderboardCommandHandler returns a handler for the /leaderboard Slack command.
// The optional text is the number of players to show.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		count := rankings.DefaultTopCount
		if text := strings.TrimSpace(cmd.Text); text != "" {
			if parsed, err := strconv.Atoi(text); err == nil && parsed > 0 {
				count = parsed
			}
		}
		log.Info("Received leaderboard command", "user", cmd.UserName, "count", count)

		msg, err := s.Notifier.FormatLeaderboardResponse(s.Rankings.ListTopPlayers(r.Context(), count))
		if err != nil {
			http.Error(w, "Failed to format leaderboard", http.StatusInternalServerError)
			log.Error("Failed to format leaderboard", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}

		respondWithSlackMsg(w, slackMsg)
	}
}

// PlayerStatsCommandHandler returns a handler for the /player-stats Slack command.
func (s *Server) PlayerStatsCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		query := strings.TrimSpace(cmd.Text)
		if query == "" {
			http.Error(w, "Player name is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received player stats command", "player", query)

		var msg any
		player, ok := findPlayer(r.Context(), s.Rankings, query)
		if !ok {
			log.Warn("Could not find player", "player", query)
			msg, err = s.Notifier.FormatPlayerNotFoundResponse(query)
		} else {
			summary, _ := s.Rankings.GetPlayerSummary(r.Context(), player.ID)
			msg, err = s.Notifier.FormatPlayerStatsResponse(summary)
		}

		if err != nil {
			http.Error(w, "Failed to format player stats", http.StatusInternalServerError)
			log.Error("Failed to format player stats", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

// findPlayer resolves a query by id, then by exact name, then by partial
// name, in ranking order. Names compare case-insensitively.
func findPlayer(ctx context.Context, r rankings.Rankings, query string) (tennis.Player, bool) {
	if p, ok := r.GetPlayer(ctx, query); ok {
		return p, true
	}

	needle := strings.ToLower(query)
	players := r.ListPlayers(ctx)
	for _, p := range players {
		if strings.ToLower(p.Name) == needle {
			return p, true
		}
	}
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return p, true
		}
	}
	return tennis.Player{}, false
}
