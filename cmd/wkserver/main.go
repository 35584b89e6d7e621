// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// wkserver serves Wiktionary word lookups over a JSON API.
package main

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	wiktionary "github.com/ianlewis/go-wiktionary"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	addr := os.Getenv("WKSERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	router := newRouter(logger, nil)
	logger.Info("starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

// newRouter builds the API router. A nil fetcher uses the default HTTP
// fetcher.
func newRouter(logger *zap.Logger, fetcher wiktionary.Fetcher) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	v1.GET("/words/:word", wordHandler(logger, fetcher))

	return router
}

// wordHandler serves one word's entry data. The language defaults to
// Spanish and a revision query parameter pins the page revision.
func wordHandler(logger *zap.Logger, fetcher wiktionary.Fetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		word := c.Param("word")
		language := c.DefaultQuery("language", "Spanish")

		var revision int64
		if rev := c.Query("revision"); rev != "" {
			var err error
			revision, err = strconv.ParseInt(rev, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "revision must be an integer",
				})
				return
			}
		}

		info, err := wiktionary.Lookup(c.Request.Context(), word, language, &wiktionary.Options{
			Revision: revision,
			Fetcher:  fetcher,
		})
		switch {
		case errors.Is(err, wiktionary.ErrPageNotFound),
			errors.Is(err, wiktionary.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		case err != nil:
			logger.Error("looking up word",
				zap.String("word", word),
				zap.String("language", language),
				zap.Error(err),
			)
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "fetching page failed",
			})
			return
		}

		d, err := info.Dict()
		if err != nil {
			logger.Error("rendering word",
				zap.String("word", word),
				zap.String("language", language),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "rendering entry failed",
			})
			return
		}

		c.JSON(http.StatusOK, d)
	}
}
