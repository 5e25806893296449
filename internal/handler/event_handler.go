package handler

import (
	"net/http"
	"strconv"

	"levelup/backend/internal/database"
	"levelup/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

// EventInput defines the writable fields of an event. The organizer always
// comes from the auth context and never changes on update.
type EventInput struct {
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string `json:"time" binding:"required,datetime=15:04"`
	GameID      uint   `json:"game" binding:"required"`
}

// EventResponse expands foreign keys two levels deep: the event's game
// carries its own expanded game type and owner. Joined is derived per
// viewer and never persisted.
type EventResponse struct {
	ID          uint            `json:"id"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Game        GameResponse    `json:"game"`
	Organizer   GamerResponse   `json:"organizer"`
	Attendees   []GamerResponse `json:"attendees"`
	Joined      bool            `json:"joined"`
}

// isAttendee reports whether the gamer is registered for the event.
// Requires the event's attendees to be preloaded.
func isAttendee(event models.Event, gamerID uint) bool {
	for _, attendee := range event.Attendees {
		if attendee.ID == gamerID {
			return true
		}
	}
	return false
}

func newEventResponse(event models.Event, viewerID uint) EventResponse {
	var attendeeResponses []GamerResponse
	for _, attendee := range event.Attendees {
		attendeeResponses = append(attendeeResponses, newGamerResponse(*attendee))
	}

	return EventResponse{
		ID:          event.ID,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
		Game:        newGameResponse(event.Game),
		Organizer:   newGamerResponse(event.Organizer),
		Attendees:   attendeeResponses,
		Joined:      isAttendee(event, viewerID),
	}
}

func preloadEvent(db *gorm.DB) *gorm.DB {
	return db.Preload("Game.GameType").Preload("Game.Gamer").Preload("Organizer").Preload("Attendees")
}

// endregion

// GetEvents godoc
// @Summary      Get all events
// @Description  Retrieves all events, optionally filtered by game, with the caller's joined flag on each.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        game  query     int  false  "Filter by Game ID"
// @Success      200   {array}   EventResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /events [get]
func GetEvents(c *gin.Context) {
	gamerID := currentGamerID(c)

	query := preloadEvent(database.DB)
	if game := c.Query("game"); game != "" {
		query = query.Where("game_id = ?", game)
	}

	var events []models.Event
	query.Find(&events)

	var response []EventResponse
	for _, event := range events {
		response = append(response, newEventResponse(event, gamerID))
	}
	c.JSON(http.StatusOK, response)
}

// GetEventByID godoc
// @Summary      Get an event by ID
// @Description  Retrieves a single event with game, organizer and attendees expanded.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  EventResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /events/{id} [get]
func GetEventByID(c *gin.Context) {
	gamerID := currentGamerID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	if err := preloadEvent(database.DB).First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newEventResponse(event, gamerID))
}

// CreateEvent godoc
// @Summary      Create a new event
// @Description  Schedules an event for a game, organized by the calling gamer.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body EventInput true "Event Info"
// @Success      201  {object}  EventResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /events [post]
func CreateEvent(c *gin.Context) {
	gamerID := currentGamerID(c)

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, input.GameID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid game"})
		return
	}

	event := models.Event{
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		GameID:      input.GameID,
		OrganizerID: gamerID,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create event"})
		return
	}

	preloadEvent(database.DB).First(&event, event.ID)
	c.JSON(http.StatusCreated, newEventResponse(event, gamerID))
}

// UpdateEvent godoc
// @Summary      Update an event
// @Description  Replaces an event's writable fields. Only the organizer may update.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int        true  "Event ID"
// @Param        input body      EventInput true  "New Event Info"
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Only the organizer can update the event"
// @Failure      404  {object}  ErrorResponse
// @Router       /events/{id} [put]
func UpdateEvent(c *gin.Context) {
	gamerID := currentGamerID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	if event.OrganizerID != gamerID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only the organizer can update the event"})
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, input.GameID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid game"})
		return
	}

	event.Description = input.Description
	event.Date = input.Date
	event.Time = input.Time
	event.GameID = input.GameID

	if err := database.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update event"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteEvent godoc
// @Summary      Delete an event
// @Description  Deletes an event and its attendance records. Only the organizer may delete.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Only the organizer can delete the event"
// @Failure      404  {object}  ErrorResponse
// @Router       /events/{id} [delete]
func DeleteEvent(c *gin.Context) {
	gamerID := currentGamerID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	if event.OrganizerID != gamerID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only the organizer can delete the event"})
		return
	}

	if err := database.DB.Select("Attendees").Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete event"})
		return
	}

	c.Status(http.StatusNoContent)
}

// SignupEvent godoc
// @Summary      Sign up for an event
// @Description  Adds the calling gamer to the event's attendees. Signing up twice is a no-op.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event ID"
// @Success      201  {object}  map[string]string "{"message": "Gamer added"}"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /events/{id}/signup [post]
func SignupEvent(c *gin.Context) {
	gamerID := currentGamerID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	// Eagerly load just the one attendee we care about
	var event models.Event
	if err := database.DB.Preload("Attendees", "id = ?", gamerID).First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	// Already signed up; the attendee set is unchanged
	if len(event.Attendees) > 0 {
		c.JSON(http.StatusCreated, gin.H{"message": "Gamer added"})
		return
	}

	var gamer models.Gamer
	if err := database.DB.First(&gamer, gamerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	if err := database.DB.Model(&event).Association("Attendees").Append(&gamer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sign up for event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Gamer added"})
}

// LeaveEvent godoc
// @Summary      Leave an event
// @Description  Removes the calling gamer from the event's attendees. Leaving an event not joined is a no-op.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /events/{id}/leave [delete]
func LeaveEvent(c *gin.Context) {
	gamerID := currentGamerID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	var gamer models.Gamer
	if err := database.DB.First(&gamer, gamerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	if err := database.DB.Model(&event).Association("Attendees").Delete(&gamer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to leave event"})
		return
	}

	c.Status(http.StatusNoContent)
}
