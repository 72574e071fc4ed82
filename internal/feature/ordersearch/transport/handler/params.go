package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"order_search/internal/feature/ordersearch/transport/http/dto"
	"order_search/internal/feature/ordersearch/usecase"
)

// bindPath はパスパラメータを simple スタイルで dest にバインドします。
func bindPath(c *gin.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), dest,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return fmt.Errorf("invalid path parameter %s: %w", name, err)
	}
	return nil
}

// pageID は :id をUUIDとしてバインドします。失敗時は400を書き込み false を返します。
func pageID(c *gin.Context) (uuid.UUID, bool) {
	var id uuid.UUID
	if err := bindPath(c, "id", &id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return uuid.Nil, false
	}
	return id, true
}

// rowIndex は :row を整数としてバインドします。失敗時は400を書き込み false を返します。
func rowIndex(c *gin.Context) (int, bool) {
	var row int
	if err := bindPath(c, "row", &row); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return 0, false
	}
	return row, true
}

// sortSpec は ?sort=&order= を読み取ります。sort が空なら検索順のままです。
func sortSpec(c *gin.Context) usecase.SortSpec {
	key := c.Query("sort")
	if key == "" {
		return usecase.SortSpec{}
	}
	return usecase.SortSpec{Key: key, Order: usecase.ParseSortOrder(c.Query("order"))}
}
