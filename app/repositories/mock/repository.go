package mock

import (
	"sync"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// The mock repositories keep records in memory for service and controller
// tests. Setting Err makes every method fail with that error, which is how
// tests exercise the storage-failure paths.

type UserRepository struct {
	users  map[uint]*models.User
	nextID uint
	mutex  sync.RWMutex

	Err error
}

type PostRepository struct {
	posts  map[uint]*models.Post
	nextID uint
	mutex  sync.RWMutex

	Err error
}

type CommentRepository struct {
	comments map[uint]*models.Comment
	nextID   uint
	mutex    sync.RWMutex

	Err error
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[uint]*models.Post),
		nextID: 1,
	}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[uint]*models.Comment),
		nextID:   1,
	}
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) GetByID(id uint) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) List() ([]*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var users []*models.User
	for id := uint(1); id < m.nextID; id++ {
		if user, ok := m.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	if m.Err != nil {
		return m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id uint) (*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, ok := m.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) GetByIDWithRelations(id uint) (*models.Post, error) {
	// The in-memory mock holds relations directly on the stored post.
	return m.GetByID(id)
}

func (m *PostRepository) List() ([]*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for id := uint(1); id < m.nextID; id++ {
		if post, ok := m.posts[id]; ok {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	if m.Err != nil {
		return m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = m.nextID
	m.nextID++
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) GetByID(id uint) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, ok := m.comments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *CommentRepository) List() ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for id := uint(1); id < m.nextID; id++ {
		if comment, ok := m.comments[id]; ok {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (m *CommentRepository) ListByPost(postID uint) ([]*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for id := uint(1); id < m.nextID; id++ {
		if comment, ok := m.comments[id]; ok && comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}
