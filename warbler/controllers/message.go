package controllers

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"warbler/warbler/realtime"
	"warbler/warbler/services/preview"
	"warbler/warbler/sources/psql/dao"
	"warbler/warbler/sources/psql/models"
	"warbler/warbler/types"
	"warbler/warbler/utils/logging"

	"go.uber.org/zap"
)

type MessageController struct {
	messageDAO *dao.MessageDAO
	likeDAO    *dao.LikeDAO
	followDAO  *dao.FollowDAO
	userDAO    *dao.UserDAO
	hub        *realtime.Hub
	previews   *preview.Fetcher
}

func NewMessageController(messageDAO *dao.MessageDAO, likeDAO *dao.LikeDAO, followDAO *dao.FollowDAO, userDAO *dao.UserDAO, hub *realtime.Hub, previews *preview.Fetcher) *MessageController {
	return &MessageController{
		messageDAO: messageDAO,
		likeDAO:    likeDAO,
		followDAO:  followDAO,
		userDAO:    userDAO,
		hub:        hub,
		previews:   previews,
	}
}

// PostResult carries the new message plus the link card extracted from
// its text, when the text contained a URL that yielded one.
type PostResult struct {
	Message *models.Message `json:"message"`
	Card    *preview.Card   `json:"card,omitempty"`
}

// Post creates a message for the authenticated author, publishes it to
// live timeline streams, and attaches a link preview on a best-effort
// basis.
func (c *MessageController) Post(ctx context.Context, userID uint, text string) (*PostResult, error) {
	defer logging.LogDuration(ctx, "message_post")()

	text = strings.TrimSpace(text)
	// The bound counts characters, not bytes: a multi-byte rune is one
	// character of the 140.
	if text == "" || utf8.RuneCountInString(text) > models.MaxMessageLength {
		return nil, types.ErrInvalidInput
	}

	msg, err := c.messageDAO.CreateMessage(ctx, userID, text)
	if err != nil {
		return nil, err
	}

	if c.hub != nil {
		c.hub.Publish(*msg)
	}

	result := &PostResult{Message: msg}
	if c.previews != nil {
		if url := preview.FindURL(text); url != "" {
			fetchCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			card, err := c.previews.Fetch(fetchCtx, url)
			if err != nil {
				logging.AppLogger.Info("link preview skipped", zap.String("url", url), zap.Error(err))
			} else {
				result.Card = card
			}
		}
	}
	return result, nil
}

func (c *MessageController) GetMessage(ctx context.Context, id uint) (*models.Message, error) {
	msg, err := c.messageDAO.GetMessageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, types.ErrNotFound
	}
	return msg, nil
}

// DeleteMessage removes a message. Only the author may delete it.
func (c *MessageController) DeleteMessage(ctx context.Context, userID, messageID uint) error {
	msg, err := c.GetMessage(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.UserID != userID {
		return types.ErrNotOwner
	}
	return c.messageDAO.DeleteMessage(ctx, messageID)
}

// ToggleLike flips the like edge for (userID, messageID): absent -> added,
// present -> removed. Liking your own message is rejected and the edge
// set is left untouched.
func (c *MessageController) ToggleLike(ctx context.Context, userID, messageID uint) (bool, error) {
	msg, err := c.GetMessage(ctx, messageID)
	if err != nil {
		return false, err
	}
	if msg.UserID == userID {
		return false, types.ErrSelfLike
	}

	liked, err := c.likeDAO.HasLike(ctx, userID, messageID)
	if err != nil {
		return false, err
	}
	if liked {
		if err := c.likeDAO.RemoveLike(ctx, userID, messageID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := c.likeDAO.AddLike(ctx, userID, messageID); err != nil {
		return false, err
	}
	return true, nil
}

// HomeTimeline returns the 100 most recent messages authored by the
// viewer or anyone the viewer follows, newest first.
func (c *MessageController) HomeTimeline(ctx context.Context, viewerID uint) ([]models.Message, error) {
	defer logging.LogDuration(ctx, "home_timeline")()

	authorIDs, err := c.followDAO.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	authorIDs = append(authorIDs, viewerID)
	return c.messageDAO.GetByAuthors(ctx, authorIDs)
}

// UserTimeline returns a single user's 100 most recent messages.
func (c *MessageController) UserTimeline(ctx context.Context, userID uint) ([]models.Message, error) {
	user, err := c.userDAO.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, types.ErrNotFound
	}
	return c.messageDAO.GetByUser(ctx, userID)
}

// TimelineAuthors is the author set a live stream should subscribe to:
// the viewer plus everyone the viewer follows.
func (c *MessageController) TimelineAuthors(ctx context.Context, viewerID uint) ([]uint, error) {
	authorIDs, err := c.followDAO.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return append(authorIDs, viewerID), nil
}
