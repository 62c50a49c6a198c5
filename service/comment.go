package service

import (
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/response"
	"StudyHub/types"
	"context"
	"net/http"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	AddComment(ctx context.Context, req *types.AddCommentRequest, userID string) (*models.PostComment, error)
	DeleteComment(ctx context.Context, commentID uint64, userID string) error
	GetComments(ctx context.Context, postID, userID string) ([]*types.CommentResponse, error)
}

type CommentService struct {
	CommentDAO *dao.Comment
	PostDAO    *dao.PostDAO
}

func (s *CommentService) AddComment(ctx context.Context, req *types.AddCommentRequest, userID string) (*models.PostComment, error) {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", req.PostID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewError(http.StatusNotFound, "Post not found")
	}

	// 不做去重，同一用户可对同一帖子多次评论
	comment := &models.PostComment{
		UserID:  userID,
		PostID:  req.PostID,
		Content: req.Content,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID uint64, userID string) error {
	// 1. 查询评论
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewError(http.StatusNotFound, "Comment not found")
	}

	// 2. 权限检查(只能删除自己的评论)，别人的评论存在也按 403 处理
	if comment.UserID != userID {
		return response.NewError(http.StatusForbidden, "You can only delete your own comments")
	}

	return s.CommentDAO.DeleteByID(ctx, commentID)
}

// GetComments 帖子的评论，按时间正序（最早的在前），标记当前用户是否为作者
func (s *CommentService) GetComments(ctx context.Context, postID, userID string) ([]*types.CommentResponse, error) {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewError(http.StatusNotFound, "Post not found")
	}

	comments, err := s.CommentDAO.GetByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	result := make([]*types.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		result = append(result, &types.CommentResponse{
			ID:        comment.ID,
			PostID:    comment.PostID,
			UserID:    comment.UserID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
			IsAuthor:  comment.UserID == userID,
		})
	}
	return result, nil
}
