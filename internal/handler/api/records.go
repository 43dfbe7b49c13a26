package api

import (
	"net/http"

	"seva-console/internal/handler/httperr"
	"seva-console/internal/infra/memstore"
	"seva-console/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// RecordHandler serves list/get/create/update/delete for one record table.
// T is the record, C the create body, U the partial update body, P the
// list query.
type RecordHandler[T, C, U, P any] struct {
	entity string
	table  *memstore.Table[T]
	create func(C) T
	list   func(P) []T
	apply  func(U, *T)
}

func (h *RecordHandler[T, C, U, P]) List(c *gin.Context) {
	var params P
	if err := c.ShouldBindQuery(&params); err != nil {
		httperr.AbortWithBindError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.list(params)})
}

func (h *RecordHandler[T, C, U, P]) Get(c *gin.Context) {
	rec, err := h.table.Get(c.Param("id"))
	if err != nil {
		h.abortLookup(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *RecordHandler[T, C, U, P]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusCreated, h.create(req))
}

func (h *RecordHandler[T, C, U, P]) Update(c *gin.Context) {
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, http.StatusBadRequest, err)
		return
	}
	rec, err := h.table.Update(c.Param("id"), func(rec *T) {
		h.apply(req, rec)
	})
	if err != nil {
		h.abortLookup(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *RecordHandler[T, C, U, P]) Delete(c *gin.Context) {
	if err := h.table.Delete(c.Param("id")); err != nil {
		h.abortLookup(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": h.entity + " deleted"})
}

func (h *RecordHandler[T, C, U, P]) abortLookup(c *gin.Context, err error) {
	if errs.Is(err, memstore.ErrNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, h.entity+" not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
