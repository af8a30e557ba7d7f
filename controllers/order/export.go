package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/diwashkafle/mygadgetnepal/httperr"
	"github.com/diwashkafle/mygadgetnepal/models"
)

// Export streams the full order book as an .xlsx download for the admin
// console.
func (h *Handler) Export(c *gin.Context) {
	orders, err := h.store.List(models.OrderFilters{})
	if err != nil {
		httperr.JSON(c, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
		return
	}

	headers := []string{
		"ID", "Customer", "Email", "Phone", "Address", "City",
		"Items", "Total", "Status", "PaymentType", "PaymentStatus", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, title := range headers {
		headerRow.AddCell().SetValue(title)
	}

	for _, o := range orders {
		customer := o.Customer.Data()
		paymentType := ""
		if o.PaymentType != nil {
			paymentType = string(*o.PaymentType)
		}

		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(customer.Name)
		row.AddCell().SetValue(customer.Email)
		row.AddCell().SetValue(customer.Phone)
		row.AddCell().SetValue(customer.Address)
		row.AddCell().SetValue(customer.City)
		row.AddCell().SetValue(len(o.Items))
		row.AddCell().SetValue(o.Total)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(paymentType)
		row.AddCell().SetValue(string(o.PaymentStatus))
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
