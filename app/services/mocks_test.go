package services

import (
	"time"

	"newswire-backend/app/models"
	"newswire-backend/app/repository"

	"github.com/stretchr/testify/mock"
)

type mockAuthorRepo struct {
	mock.Mock
}

func (m *mockAuthorRepo) Create(author *models.Author) error {
	args := m.Called(author)
	return args.Error(0)
}

func (m *mockAuthorRepo) GetByID(id uint64) (*models.Author, error) {
	args := m.Called(id)
	if a := args.Get(0); a != nil {
		return a.(*models.Author), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthorRepo) GetByName(name string) (*models.Author, error) {
	args := m.Called(name)
	if a := args.Get(0); a != nil {
		return a.(*models.Author), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthorRepo) GetByNewsID(newsID uint64) (*models.Author, error) {
	args := m.Called(newsID)
	if a := args.Get(0); a != nil {
		return a.(*models.Author), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthorRepo) List(params repository.ListParams) ([]models.Author, error) {
	args := m.Called(params)
	if a := args.Get(0); a != nil {
		return a.([]models.Author), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthorRepo) ListByNewsCount(params repository.ListParams) ([]models.Author, error) {
	args := m.Called(params)
	if a := args.Get(0); a != nil {
		return a.([]models.Author), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthorRepo) Update(author *models.Author) error {
	args := m.Called(author)
	return args.Error(0)
}

func (m *mockAuthorRepo) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockAuthorRepo) ExistsByID(id uint64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthorRepo) NameExists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthorRepo) NameExistsExceptID(name string, id uint64) (bool, error) {
	args := m.Called(name, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthorRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockNewsRepo struct {
	mock.Mock
}

func (m *mockNewsRepo) Create(news *models.News) error {
	args := m.Called(news)
	return args.Error(0)
}

func (m *mockNewsRepo) GetByID(id uint64) (*models.News, error) {
	args := m.Called(id)
	if n := args.Get(0); n != nil {
		return n.(*models.News), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNewsRepo) GetByTitle(title string) (*models.News, error) {
	args := m.Called(title)
	if n := args.Get(0); n != nil {
		return n.(*models.News), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNewsRepo) List(params repository.ListParams) ([]models.News, error) {
	args := m.Called(params)
	if n := args.Get(0); n != nil {
		return n.([]models.News), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNewsRepo) Search(params repository.NewsSearchParams) ([]models.News, error) {
	args := m.Called(params)
	if n := args.Get(0); n != nil {
		return n.([]models.News), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNewsRepo) Update(news *models.News) error {
	args := m.Called(news)
	return args.Error(0)
}

func (m *mockNewsRepo) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockNewsRepo) ExistsByID(id uint64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockNewsRepo) TitleExists(title string) (bool, error) {
	args := m.Called(title)
	return args.Bool(0), args.Error(1)
}

func (m *mockNewsRepo) TitleExistsExceptID(title string, id uint64) (bool, error) {
	args := m.Called(title, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockNewsRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockTagRepo struct {
	mock.Mock
}

func (m *mockTagRepo) Create(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *mockTagRepo) GetByID(id uint64) (*models.Tag, error) {
	args := m.Called(id)
	if t := args.Get(0); t != nil {
		return t.(*models.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepo) GetByName(name string) (*models.Tag, error) {
	args := m.Called(name)
	if t := args.Get(0); t != nil {
		return t.(*models.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepo) List(params repository.ListParams) ([]models.Tag, error) {
	args := m.Called(params)
	if t := args.Get(0); t != nil {
		return t.([]models.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepo) ListByNewsID(newsID uint64) ([]models.Tag, error) {
	args := m.Called(newsID)
	if t := args.Get(0); t != nil {
		return t.([]models.Tag), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTagRepo) Update(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *mockTagRepo) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockTagRepo) ExistsByID(id uint64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockTagRepo) NameExists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *mockTagRepo) NameExistsExceptID(name string, id uint64) (bool, error) {
	args := m.Called(name, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockTagRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *mockCommentRepo) GetByID(id uint64) (*models.Comment, error) {
	args := m.Called(id)
	if cm := args.Get(0); cm != nil {
		return cm.(*models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) List(params repository.ListParams) ([]models.Comment, error) {
	args := m.Called(params)
	if cm := args.Get(0); cm != nil {
		return cm.([]models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) ListByNewsID(newsID uint64) ([]models.Comment, error) {
	args := m.Called(newsID)
	if cm := args.Get(0); cm != nil {
		return cm.([]models.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) Update(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *mockCommentRepo) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockCommentRepo) ExistsByID(id uint64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCommentRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(id uint64) (*models.User, error) {
	args := m.Called(id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockUserRepo) ExistsByUsername(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Set(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *mockCache) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}
