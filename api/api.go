package api

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"profitplanner/internal/db/models/postgres/public/model"
	"profitplanner/internal/domain"
	"profitplanner/internal/logger"
	"profitplanner/internal/repository"
	"profitplanner/internal/service"
	"profitplanner/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                   *sql.DB
	ForecastService      service.ForecastService
	ApiRequestRepository repository.ApiRequestRepository
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to profitplanner"})
	})
	router.POST("/simulate", m.simulate)
	router.POST("/forecast", m.forecast)
	router.POST("/portfolios/:portfolioID/forecast", m.portfolioForecast)
	router.POST("/portfolios/:portfolioID/forecasts", m.saveForecast)
	router.GET("/portfolios/:portfolioID/forecasts", m.listForecasts)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	code := 500
	if errors.Is(err, service.ErrStrategyNotFound) {
		code = 404
	} else if errors.Is(err, service.ErrForecastNameRequired) {
		code = 400
	}
	returnErrorJsonCode(err, c, code)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Errorw(err.Error(), "status", code)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// profiledContext attaches a fresh profile to the request context. The
// returned func ends it and logs the spans.
func profiledContext(c *gin.Context) (context.Context, func()) {
	profile, endProfile := domain.NewProfile()
	ctx := domain.WithProfile(c.Request.Context(), profile)
	return ctx, func() {
		endProfile()
		logger.FromContext(c).Infow("request profile",
			"totalMs", *profile.TotalMs,
			"spans", profile.Spans,
		)
	}
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	lg := zap.S().With(
		"requestID", uuid.NewString(),
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	)
	ctx.Set(logger.ContextKey, lg)
	ctx.Request = ctx.Request.WithContext(logger.WithLogger(ctx.Request.Context(), lg))

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		lg.Warnf("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(model.APIRequest{
		IPAddress:   util.StringPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: util.StringPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		lg.Warn(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = util.StringPointer(w.body.String())

		err = m.ApiRequestRepository.Update(*req)
		if err != nil {
			lg.Warn(err)
		}
	}
}
