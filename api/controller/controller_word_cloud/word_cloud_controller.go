package controller_word_cloud

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ninesong/wordcloud/api/controller"
	"github.com/ninesong/wordcloud/domain"
	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_interface"
)

// MaxUploadSize 上传文件与文本字段的大小上限
const MaxUploadSize = 32 << 20

type WordCloudController struct {
	WordCloudUsecase word_cloud_interface.WordCloudUsecase
	maxUploadSize    int64
}

func NewWordCloudController(uc word_cloud_interface.WordCloudUsecase) *WordCloudController {
	return &WordCloudController{WordCloudUsecase: uc, maxUploadSize: MaxUploadSize}
}

func (c *WordCloudController) GenerateHandler(ctx *gin.Context) {
	params := struct {
		Limit int    `form:"limit" binding:"required,numeric,min=1,max=1000"`
		Text  string `form:"text"`
	}{}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadSize)
	if err := ctx.ShouldBind(&params); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			controller.ErrorResponse(ctx, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
				"request body exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
			return
		}
		bindError(ctx, err, "limit超出有效范围(1-1000)")
		return
	}

	// 1. 读取上传文件，缺失时退回 text 字段
	input, label, err := readInput(ctx, params.Text)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "MISSING_PARAMETER", err.Error())
		return
	}

	// 2. 生成词云页面
	var page bytes.Buffer
	_, err = c.WordCloudUsecase.BuildWordCloud(ctx.Request.Context(), input, label, params.Limit, &page)
	if err != nil {
		generateError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", page.Bytes())
}

func readInput(ctx *gin.Context, text string) (io.ReadSeeker, string, error) {
	header, err := ctx.FormFile("file")
	if err == nil {
		file, err := header.Open()
		if err != nil {
			return nil, "", err
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), header.Filename, nil
	}
	if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return nil, "", err
	}
	if text == "" {
		return nil, "", errors.New("missing file or text parameter")
	}
	return bytes.NewReader([]byte(text)), "text", nil
}

func generateError(ctx *gin.Context, err error) {
	var (
		selErr *domain.SelectionError
		inErr  *domain.InputReadError
	)
	switch {
	case errors.As(err, &selErr):
		controller.ErrorResponse(ctx, http.StatusUnprocessableEntity, "SELECTION_ERROR", err.Error())
	case errors.Is(err, domain.ErrUnsupportedInput):
		controller.ErrorResponse(ctx, http.StatusUnsupportedMediaType, "UNSUPPORTED_INPUT", err.Error())
	case errors.As(err, &inErr):
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	default:
		log.Printf("word cloud generation failed: %v", err)
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

func bindError(ctx *gin.Context, err error, rangeMessage string) {
	switch {
	case errors.Is(err, strconv.ErrRange):
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", rangeMessage)
	case errors.Is(err, strconv.ErrSyntax):
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "limit必须是整数")
	default:
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
	}
}

func (c *WordCloudController) GetAllWordCloudHandler(ctx *gin.Context) {
	wordClouds, err := c.WordCloudUsecase.GetAllWordCloudSearch(ctx.Request.Context())
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(ctx, "word_cloud", wordClouds, len(wordClouds))
}

func (c *WordCloudController) GetHighFrequencyWordCloudHandler(ctx *gin.Context) {
	params := struct {
		Limit int `form:"limit" binding:"required,numeric,min=1,max=100"`
	}{}

	if err := ctx.ShouldBindQuery(&params); err != nil {
		bindError(ctx, err, "limit超出有效范围(1-100)")
		return
	}

	highWordCloud, err := c.WordCloudUsecase.GetHighFrequencyWordCloudSearch(
		ctx.Request.Context(),
		params.Limit,
	)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	controller.SuccessResponse(ctx, "word_cloud", highWordCloud, len(highWordCloud))
}
