package handler

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SAI-KARTHIK999/SkinSey/dto"
	"github.com/SAI-KARTHIK999/SkinSey/model"
	"github.com/SAI-KARTHIK999/SkinSey/repository"
	"github.com/SAI-KARTHIK999/SkinSey/utils"
)

// Reads are public; writes require a session so posts carry a display name
// and an owner.

func ListTipsHandler(c *gin.Context, community *repository.CommunityRepo) {
	tips, err := community.ListTips(c)
	if err != nil {
		utils.InternalError(c, "Failed to load tips")
		return
	}
	utils.Success(c, gin.H{"tips": tips})
}

func CreateTipHandler(c *gin.Context, community *repository.CommunityRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	var req dto.TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Tip content is required")
		return
	}

	tip := &model.Tip{
		UserID:     user.ID,
		UserName:   user.Name,
		OwnerEmail: user.Email,
		Content:    req.Content,
	}

	if err := community.InsertTip(c, tip); err != nil {
		utils.InternalError(c, "Failed to share tip")
		return
	}
	utils.Created(c, tip)
}

func LikeTipHandler(c *gin.Context, community *repository.CommunityRepo) {
	tipID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid tip id")
		return
	}

	if err := community.LikeTip(c, tipID); err != nil {
		if err == repository.ErrNotFound {
			utils.NotFound(c, "Tip not found")
			return
		}
		utils.InternalError(c, "Failed to like tip")
		return
	}
	utils.Success(c, gin.H{"message": "Tip liked"})
}

func DeleteTipHandler(c *gin.Context, community *repository.CommunityRepo) {
	tipID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid tip id")
		return
	}

	if err := community.DeleteTip(c, tipID, c.GetString("email")); err != nil {
		if err == repository.ErrNotFound {
			utils.NotFound(c, "Tip not found")
			return
		}
		utils.InternalError(c, "Failed to delete tip")
		return
	}
	utils.Success(c, gin.H{"message": "Tip deleted"})
}

func ListSuccessStoriesHandler(c *gin.Context, community *repository.CommunityRepo) {
	stories, err := community.ListStories(c)
	if err != nil {
		utils.InternalError(c, "Failed to load success stories")
		return
	}
	utils.Success(c, gin.H{"stories": stories})
}

func CreateSuccessStoryHandler(c *gin.Context, community *repository.CommunityRepo, users *repository.UserRepo) {
	user := currentUser(c, users)
	if user == nil {
		return
	}

	var req dto.SuccessStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Story content is required")
		return
	}

	story := &model.SuccessStory{
		UserID:     user.ID,
		UserName:   user.Name,
		OwnerEmail: user.Email,
		Title:      req.Title,
		Content:    req.Content,
	}

	if err := community.InsertStory(c, story); err != nil {
		utils.InternalError(c, "Failed to share story")
		return
	}
	utils.Created(c, story)
}

func DeleteSuccessStoryHandler(c *gin.Context, community *repository.CommunityRepo) {
	storyID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid story id")
		return
	}

	if err := community.DeleteStory(c, storyID, c.GetString("email")); err != nil {
		if err == repository.ErrNotFound {
			utils.NotFound(c, "Story not found")
			return
		}
		utils.InternalError(c, "Failed to delete story")
		return
	}
	utils.Success(c, gin.H{"message": "Story deleted"})
}

func CommunityStatsHandler(c *gin.Context, community *repository.CommunityRepo, users *repository.UserRepo) {
	tips, err := community.CountTips(c)
	if err != nil {
		utils.InternalError(c, "Failed to load community stats")
		return
	}
	stories, err := community.CountStories(c)
	if err != nil {
		utils.InternalError(c, "Failed to load community stats")
		return
	}
	members, err := users.CountUsers(c)
	if err != nil {
		utils.InternalError(c, "Failed to load community stats")
		return
	}

	utils.Success(c, model.CommunityStats{
		ActiveMembers:  members,
		TipsShared:     tips,
		SuccessStories: stories,
	})
}
