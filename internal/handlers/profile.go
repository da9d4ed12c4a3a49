package handlers

import (
	"errors"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"docgrow-server/internal/models"
	"docgrow-server/internal/schedule"
	"docgrow-server/internal/utils"
)

// ProfileHandler manages the clinician's display name, the only durable value
// in the system. The in-memory copy is authoritative for the running session;
// the database write is best-effort and its failure only downgrades
// durability.
type ProfileHandler struct {
	DB  *gorm.DB
	log zerolog.Logger

	mu   sync.RWMutex
	name string
}

// NewProfileHandler loads the saved display name. Any load failure reads as
// an empty name, so onboarding runs again instead of the server refusing to
// start.
func NewProfileHandler(db *gorm.DB, logger zerolog.Logger) *ProfileHandler {
	h := &ProfileHandler{DB: db, log: logger}
	if db == nil {
		return h
	}

	var profile models.UserProfile
	err := db.Where(&models.UserProfile{Key: models.ProfileKey}).First(&profile).Error
	switch {
	case err == nil:
		h.name = profile.DisplayName
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first run, nothing saved yet
	default:
		logger.Warn().Err(err).Msg("could not load saved profile, starting with an empty name")
	}
	return h
}

// GetProfile handles fetching the display name. An empty name tells the
// client to run onboarding.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	h.mu.RLock()
	name := h.name
	h.mu.RUnlock()

	utils.Success(c, "Profile fetched successfully", gin.H{"displayName": name})
}

// UpdateProfileRequest represents the request body for saving the display name.
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
}

// UpdateProfile saves the display name. The session name updates even when
// the database write fails; the response carries persisted=false so the
// client can surface a notice.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		utils.ValidationFailed(c, schedule.CodeMissingRequiredField, "display name is required")
		return
	}

	h.mu.Lock()
	h.name = name
	h.mu.Unlock()

	persisted := h.persist(name)
	message := "Name saved"
	if !persisted {
		message = "Name updated for this session but could not be saved"
	}
	utils.Success(c, message, gin.H{"displayName": name, "persisted": persisted})
}

func (h *ProfileHandler) persist(name string) bool {
	if h.DB == nil {
		return false
	}

	profile := models.UserProfile{Key: models.ProfileKey, DisplayName: name}
	err := h.DB.Where(&models.UserProfile{Key: models.ProfileKey}).
		Assign(&models.UserProfile{DisplayName: name}).
		FirstOrCreate(&profile).Error
	if err != nil {
		h.log.Error().Err(err).Msg("failed to persist display name")
		return false
	}
	return true
}
