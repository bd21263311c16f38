package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"time"

	"soclone/internal/db"
	"soclone/internal/middleware"
	"soclone/internal/models"
	"soclone/internal/services"
	"soclone/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuestionHandler struct {
	stats *services.StatsService
}

func NewQuestionHandler() *QuestionHandler {
	return &QuestionHandler{
		stats: services.NewStatsService(),
	}
}

const questionsPerPage = 30

func (h *QuestionHandler) List(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}

	cacheKey := fmt.Sprintf("question:list:page:%d", page)
	if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
		if hData, ok := cachedData.(gin.H); ok {
			// Render mutates the map (current user, flash), so the cached
			// copy must stay pristine between requests.
			Render(c, http.StatusOK, "question/list.html", copyH(hData))
			return
		}
	}

	questions, total, err := h.stats.LatestQuestions(page, questionsPerPage)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load questions")
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(questionsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	renderData := gin.H{
		"Questions":   questions,
		"Title":       "All Questions",
		"Active":      "questions",
		"CurrentPage": page,
		"TotalPages":  totalPages,
	}

	utils.GetCache().Set(cacheKey, renderData, 1*time.Minute)

	Render(c, http.StatusOK, "question/list.html", copyH(renderData))
}

func copyH(h gin.H) gin.H {
	out := make(gin.H, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

// answerView pairs an answer row with its rendered body for the template.
type answerView struct {
	services.AnswerRow
	BodyHTML template.HTML
}

func (h *QuestionHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	question, err := h.stats.QuestionDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RenderError(c, http.StatusNotFound, "Question not found")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Failed to load question")
		return
	}

	answers, err := h.stats.AnswersFor(id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to load answers")
		return
	}

	answerViews := make([]answerView, len(answers))
	for i, a := range answers {
		answerViews[i] = answerView{
			AnswerRow: a,
			BodyHTML:  utils.RenderMarkdown(a.Body),
		}
	}

	Render(c, http.StatusOK, "question/detail.html", gin.H{
		"Title":       question.Title,
		"Question":    question,
		"ProblemHTML": utils.RenderMarkdown(question.Problem),
		"EffortHTML":  utils.RenderMarkdown(question.Effort),
		"Answers":     answerViews,
		"Modified":    question.Modified(),
	})
}

func (h *QuestionHandler) ShowCreate(c *gin.Context) {
	var tags []models.Tag
	db.DB.Order("name ASC").Find(&tags)

	Render(c, http.StatusOK, "question/create.html", gin.H{
		"Title":   "Ask a Question",
		"AllTags": tags,
	})
}

func (h *QuestionHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	title, titleSafe := utils.SanitizeField(c.PostForm("title"))
	problem, problemSafe := utils.SanitizeField(c.PostForm("problem"))
	effort, effortSafe := utils.SanitizeField(c.PostForm("effort"))

	renderForm := func(code int, errMsg string) {
		var tags []models.Tag
		db.DB.Order("name ASC").Find(&tags)
		Render(c, code, "question/create.html", gin.H{
			"Title":   "Ask a Question",
			"AllTags": tags,
			"Error":   errMsg,
			"Form":    gin.H{"Title": title, "Problem": problem, "Effort": effort},
		})
	}

	if title == "" {
		renderForm(http.StatusBadRequest, "Title must not be empty")
		return
	}
	if !titleSafe || !problemSafe || !effortSafe {
		// Not fatal, the cleaned text goes on below
		Flash(c, "Unsafe markup was removed from your input")
	}

	var tags []models.Tag
	if ids := c.PostFormArray("tags"); len(ids) > 0 {
		tagIDs := make([]uint, 0, len(ids))
		for _, s := range ids {
			if id := utils.StringToUint(s); id > 0 {
				tagIDs = append(tagIDs, id)
			}
		}
		db.DB.Where("id IN ?", tagIDs).Find(&tags)
	}

	question := models.Question{
		UserID:  user.ID,
		Title:   title,
		Problem: problem,
		Effort:  effort,
		Tags:    tags,
	}

	if err := db.DB.Create(&question).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			renderForm(http.StatusConflict, "A question with this title or text already exists")
		default:
			renderForm(http.StatusBadRequest, validationMessage(err, "Failed to create question"))
		}
		return
	}

	utils.GetCache().Delete("question:list:page:1")

	c.Redirect(http.StatusFound, fmt.Sprintf("/questions/%d", question.ID))
}

func (h *QuestionHandler) CreateAnswer(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	questionID := utils.StringToUint(c.Param("id"))

	var question models.Question
	if err := db.DB.Select("id").First(&question, questionID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Question not found")
		return
	}

	body, bodySafe := utils.SanitizeField(c.PostForm("body"))
	if !bodySafe {
		Flash(c, "Unsafe markup was removed from your input")
	}

	answer := models.Answer{
		QuestionID: question.ID,
		UserID:     user.ID,
		Body:       body,
	}
	if err := db.DB.Create(&answer).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			RenderError(c, http.StatusConflict, "An identical answer already exists")
		default:
			RenderError(c, http.StatusBadRequest, validationMessage(err, "Failed to post answer"))
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/questions/%d", question.ID))
}
