package service

import (
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/response"
	"StudyHub/pkg/utils"
	"StudyHub/types"
	"context"
	"net/http"
)

// UnknownAuthorName 作者行缺失时的占位展示名
const UnknownAuthorName = "Unknown User"

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	CreatePost(ctx context.Context, req *types.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID, userID string) (*types.PostDetailResponse, error)
	ListPosts(ctx context.Context, req *types.ListPostsRequest, userID string) ([]*dao.PostStatsRow, error)
}

type PostService struct {
	PostDAO   *dao.PostDAO
	LikeDAO   *dao.PostLikeDAO
	UserDAO   *dao.Users
	CourseDAO *dao.Course
}

func (s *PostService) CreatePost(ctx context.Context, req *types.CreatePostRequest) (*models.Post, error) {
	// 作者和课程各查一次，先报作者的错
	authorExist, err := s.UserDAO.IsExist(ctx, "id = ?", req.AuthorID)
	if err != nil {
		return nil, err
	}
	courseExist, err := s.CourseDAO.IsExist(ctx, "id = ?", req.CourseID)
	if err != nil {
		return nil, err
	}
	if !authorExist {
		return nil, response.NewError(http.StatusNotFound, "User not found")
	}
	if !courseExist {
		return nil, response.NewError(http.StatusNotFound, "Course not found")
	}

	post := &models.Post{
		ID:        utils.GenToken(),
		CourseID:  req.CourseID,
		AuthorID:  req.AuthorID,
		Title:     req.Title,
		PreviewMD: req.PreviewMD,
		ContentMD: req.ContentMD,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost 单帖详情，点赞数和是否点赞每次实时计算
func (s *PostService) GetPost(ctx context.Context, postID, userID string) (*types.PostDetailResponse, error) {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, response.NewError(http.StatusNotFound, "Post not found")
	}

	likeCount, err := s.LikeDAO.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	liked, err := s.LikeDAO.IsLiked(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	// 作者行可能已缺失，用占位名兜底而不是报错
	authorName := UnknownAuthorName
	author, err := s.UserDAO.FindByID(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	if author != nil {
		authorName = author.Name
	}

	return &types.PostDetailResponse{
		ID:          post.ID,
		CourseID:    post.CourseID,
		AuthorID:    post.AuthorID,
		AuthorName:  authorName,
		Title:       post.Title,
		PreviewMD:   post.PreviewMD,
		ContentMD:   post.ContentMD,
		CreatedAt:   post.CreatedAt,
		LikeCount:   likeCount,
		LikedByUser: liked,
	}, nil
}

func (s *PostService) ListPosts(ctx context.Context, req *types.ListPostsRequest, userID string) ([]*dao.PostStatsRow, error) {
	if req.CourseID != nil {
		exist, err := s.CourseDAO.IsExist(ctx, "id = ?", *req.CourseID)
		if err != nil {
			return nil, err
		}
		if !exist {
			return nil, response.NewError(http.StatusNotFound, "Course not found")
		}
	}

	rows, err := s.PostDAO.ListWithStats(ctx, req.CourseID, req.SortByLikes, req.Limit, userID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = make([]*dao.PostStatsRow, 0)
	}
	return rows, nil
}
