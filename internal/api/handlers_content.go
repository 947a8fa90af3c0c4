package api

import (
	"github.com/cogbio/labsite/internal/models"
	"github.com/gofiber/fiber/v2"
)

// Content handlers work straight against gorm; these tables carry no
// invariants beyond their schema.

type publicationInput struct {
	Citation string `json:"citation" form:"citation"`
	Note     string `json:"note" form:"note"`
	DOI      string `json:"doi" form:"doi"`
	Type     string `json:"type" form:"type"`
}

func (handler *Handler) ListPublications(c *fiber.Ctx) error {
	publications := make([]models.Publication, 0)
	if err := handler.db.Order("created_at DESC, id DESC").Find(&publications).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load publications")
	}
	return dataResponse(c, publications)
}

func (handler *Handler) CreatePublication(c *fiber.Ctx) error {
	input := publicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Citation == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Citation is required")
	}

	publication := models.Publication{
		Citation: input.Citation,
		Note:     input.Note,
		DOI:      input.DOI,
		Type:     input.Type,
	}
	if publication.Type == "" {
		publication.Type = models.PublicationTypeArticle
	}
	if err := handler.db.Create(&publication).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create publication")
	}
	return createdResponse(c, publication)
}

func (handler *Handler) UpdatePublication(c *fiber.Ctx) error {
	publicationID, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid publication id")
	}
	var publication models.Publication
	if err := handler.db.First(&publication, publicationID).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Publication not found")
	}

	input := publicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Citation == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Citation is required")
	}

	publication.Citation = input.Citation
	publication.Note = input.Note
	publication.DOI = input.DOI
	if input.Type != "" {
		publication.Type = input.Type
	}
	if err := handler.db.Save(&publication).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update publication")
	}
	return dataResponse(c, publication)
}

func (handler *Handler) DeletePublication(c *fiber.Ctx) error {
	return handler.deleteByID(c, &models.Publication{}, "Publication not found")
}

type newsInput struct {
	Category string `json:"category" form:"category"`
	Date     string `json:"date" form:"date"`
	Title    string `json:"title" form:"title"`
	Icon     string `json:"icon" form:"icon"`
}

func (handler *Handler) ListNews(c *fiber.Ctx) error {
	items := make([]models.News, 0)
	if err := handler.db.Order("date DESC, id DESC").Find(&items).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load news")
	}
	return dataResponse(c, items)
}

func (handler *Handler) CreateNews(c *fiber.Ctx) error {
	input := newsInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Title == "" || input.Category == "" || input.Date == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Category, date and title are required")
	}

	item := models.News{
		Category: input.Category,
		Date:     input.Date,
		Title:    input.Title,
		Icon:     input.Icon,
	}
	if item.Icon == "" {
		item.Icon = "📄"
	}
	if err := handler.db.Create(&item).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create news")
	}
	return createdResponse(c, item)
}

func (handler *Handler) UpdateNews(c *fiber.Ctx) error {
	newsID, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid news id")
	}
	var item models.News
	if err := handler.db.First(&item, newsID).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "News not found")
	}

	input := newsInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Title == "" || input.Category == "" || input.Date == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Category, date and title are required")
	}

	item.Category = input.Category
	item.Date = input.Date
	item.Title = input.Title
	if input.Icon != "" {
		item.Icon = input.Icon
	}
	if err := handler.db.Save(&item).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update news")
	}
	return dataResponse(c, item)
}

func (handler *Handler) DeleteNews(c *fiber.Ctx) error {
	return handler.deleteByID(c, &models.News{}, "News not found")
}

type albumInput struct {
	Title        string              `json:"title" form:"title"`
	Description  string              `json:"description" form:"description"`
	CoverImage   string              `json:"coverImage" form:"cover_image"`
	Photos       []models.AlbumPhoto `json:"photos"`
	Category     string              `json:"category" form:"category"`
	IsPublished  *bool               `json:"isPublished" form:"is_published"`
	DisplayOrder int                 `json:"order" form:"order"`
}

func (handler *Handler) ListAlbums(c *fiber.Ctx) error {
	albums := make([]models.Album, 0)
	if err := handler.db.Order("display_order ASC, id DESC").Find(&albums).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load albums")
	}
	return dataResponse(c, albums)
}

func (handler *Handler) CreateAlbum(c *fiber.Ctx) error {
	input := albumInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Title == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Title is required")
	}

	album := models.Album{
		Title:        input.Title,
		Description:  input.Description,
		CoverImage:   input.CoverImage,
		Photos:       input.Photos,
		Category:     input.Category,
		IsPublished:  true,
		DisplayOrder: input.DisplayOrder,
	}
	if album.Photos == nil {
		album.Photos = []models.AlbumPhoto{}
	}
	if album.Category == "" {
		album.Category = "General"
	}
	if input.IsPublished != nil {
		album.IsPublished = *input.IsPublished
	}
	if err := handler.db.Create(&album).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create album")
	}
	return createdResponse(c, album)
}

func (handler *Handler) UpdateAlbum(c *fiber.Ctx) error {
	albumID, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid album id")
	}
	var album models.Album
	if err := handler.db.First(&album, albumID).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Album not found")
	}

	input := albumInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Title == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Title is required")
	}

	album.Title = input.Title
	album.Description = input.Description
	album.CoverImage = input.CoverImage
	album.DisplayOrder = input.DisplayOrder
	if input.Photos != nil {
		album.Photos = input.Photos
	}
	if input.Category != "" {
		album.Category = input.Category
	}
	if input.IsPublished != nil {
		album.IsPublished = *input.IsPublished
	}
	if err := handler.db.Save(&album).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update album")
	}
	return dataResponse(c, album)
}

func (handler *Handler) DeleteAlbum(c *fiber.Ctx) error {
	return handler.deleteByID(c, &models.Album{}, "Album not found")
}

type resourceInput struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Link        string `json:"link" form:"link"`
}

func (handler *Handler) ListResources(c *fiber.Ctx) error {
	resources := make([]models.Resource, 0)
	if err := handler.db.Order("created_at DESC, id DESC").Find(&resources).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to load resources")
	}
	return dataResponse(c, resources)
}

func (handler *Handler) CreateResource(c *fiber.Ctx) error {
	input := resourceInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Title == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Title is required")
	}

	resource := models.Resource{
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
	}
	if err := handler.db.Create(&resource).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to create resource")
	}
	return createdResponse(c, resource)
}

func (handler *Handler) UpdateResource(c *fiber.Ctx) error {
	resourceID, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid resource id")
	}
	var resource models.Resource
	if err := handler.db.First(&resource, resourceID).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Resource not found")
	}

	input := resourceInput{}
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Title == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Title is required")
	}

	resource.Title = input.Title
	resource.Description = input.Description
	resource.Link = input.Link
	if err := handler.db.Save(&resource).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to update resource")
	}
	return dataResponse(c, resource)
}

func (handler *Handler) DeleteResource(c *fiber.Ctx) error {
	return handler.deleteByID(c, &models.Resource{}, "Resource not found")
}

func (handler *Handler) deleteByID(c *fiber.Ctx, model any, notFoundMessage string) error {
	recordID, err := parseIDParam(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid id")
	}
	result := handler.db.Delete(model, recordID)
	if result.Error != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to delete")
	}
	if result.RowsAffected == 0 {
		return errorResponse(c, fiber.StatusNotFound, notFoundMessage)
	}
	return dataResponse(c, fiber.Map{})
}
