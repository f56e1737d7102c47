package page

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/follow"
	"terminal-terrace/conduit/internal/middleware"
	"terminal-terrace/conduit/internal/user"
)

// Profile 个人主页，?favourites=true 时展示收藏的文章
func (h *Handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	profileID := c.Param("user_id")
	viewerID := middleware.CurrentUserID(c)
	favourites := c.Query("favourites") == "true"

	profile, bizErr := h.profiles.GetProfile(ctx, profileID, viewerID)
	if bizErr != nil {
		h.renderError(c, bizErr)
		return
	}

	articles, bizErr := h.articles.ListForProfile(ctx, profile.ID, favourites, viewerID)
	if bizErr != nil {
		h.renderError(c, bizErr)
		return
	}

	h.renderer.Render(c, http.StatusOK, "profile", profileView{
		base:       h.base(c, profile.Name),
		Profile:    profile,
		Articles:   articles,
		Favourites: favourites,
		IsSelf:     viewerID == profile.ID,
	})
}

func (h *Handler) ToggleFollow(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	influencerID := c.Param("user_id")
	if _, err := h.follows.Toggle(c.Request.Context(), userID, influencerID); err != nil {
		h.renderError(c, follow.ToBusinessError(err))
		return
	}
	c.Redirect(http.StatusSeeOther, redirectTarget(c, "/profile/"+influencerID))
}

func (h *Handler) SettingsForm(c *gin.Context) {
	b := h.base(c, "Settings")
	form := user.SettingsRequest{}
	if u := b.CurrentUser; u != nil {
		form.Email = u.Email
		if u.Bio != nil {
			form.Bio = *u.Bio
		}
		if u.Image != nil {
			form.Image = *u.Image
		}
	}
	view := settingsView{base: b, Form: form}
	if b.CurrentUser != nil {
		view.SessionCount, view.ShowSessions = h.sessions.ActiveSessions(c.Request.Context(), b.CurrentUser.ID)
	}
	h.renderer.Render(c, http.StatusOK, "settings", view)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req user.SettingsRequest
	bizErr := bindForm(c, &req)

	var updated *user.SettingsResponse
	if bizErr == nil {
		updated, bizErr = h.settings.Apply(c, req)
	}
	if bizErr != nil {
		// 密码不回显
		req.Password, req.ConfirmPassword = "", ""
		view := settingsView{base: h.base(c, "Settings"), Form: req}
		view.Error = bizErr.Msg
		h.renderer.Render(c, bizErr.Code.HTTPStatus(), "settings", view)
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile/"+updated.ID)
}
