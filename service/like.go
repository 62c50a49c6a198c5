package service

import (
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/response"
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, postID, userID string) error
	Unlike(ctx context.Context, postID, userID string) error
}

type LikeService struct {
	LikeDAO *dao.PostLikeDAO
	PostDAO *dao.PostDAO
}

func (s *LikeService) Like(ctx context.Context, postID, userID string) error {
	// 校验帖子存在
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NewError(http.StatusNotFound, "Post not found")
	}

	// 重复点赞是错误，不是幂等成功
	isLiked, err := s.LikeDAO.IsLiked(ctx, postID, userID)
	if err != nil {
		return err
	}
	if isLiked {
		return response.NewError(http.StatusConflict, "Post already liked")
	}

	if err := s.LikeDAO.Create(ctx, &models.PostLike{UserID: userID, PostID: postID}); err != nil {
		// 并发点赞靠联合主键兜底，冲突同样按 409 返回
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.NewError(http.StatusConflict, "Post already liked")
		}
		return err
	}
	return nil
}

func (s *LikeService) Unlike(ctx context.Context, postID, userID string) error {
	rows, err := s.LikeDAO.DeleteByPostUser(ctx, postID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return response.NewError(http.StatusNotFound, "Like not found")
	}
	return nil
}
