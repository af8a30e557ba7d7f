package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/diwashkafle/mygadgetnepal/httperr"
)

// Export streams the catalog as an .xlsx download for the admin console.
func (h *Handler) Export(c *gin.Context) {
	products, err := h.store.List()
	if err != nil {
		httperr.JSON(c, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
		return
	}

	headers := []string{
		"ID", "Name", "Category", "Price", "CrossedPrice", "Stock",
		"Status", "Images", "VariantGroups", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, title := range headers {
		headerRow.AddCell().SetValue(title)
	}

	for _, p := range products {
		categoryName := ""
		if p.Category != nil {
			categoryName = p.Category.Name
		}

		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(categoryName)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.CrossedPrice)
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(string(p.Status))
		row.AddCell().SetValue(len(p.Images))
		row.AddCell().SetValue(len(p.Variants))
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
