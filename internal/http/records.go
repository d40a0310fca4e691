package http

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fuelops/dispensing-service/internal/http/dto"
	"github.com/fuelops/dispensing-service/internal/pdf"
	"github.com/fuelops/dispensing-service/internal/service"
	"github.com/fuelops/dispensing-service/internal/token"
)

// предел размера платёжного подтверждения
const maxAttachmentBytes = 10 << 20

// ListRecords — фильтрованная постраничная выборка записей
// @Summary     Список записей об отпуске
// @Tags        records
// @Produce     json
// @Param       dispenserNo query string false "Dispenser number, exact match"
// @Param       paymentMode query string false "Payment mode, exact match"
// @Param       startDate   query string false "YYYY-MM-DD, inclusive"
// @Param       endDate     query string false "YYYY-MM-DD, inclusive (whole day)"
// @Param       page        query int    false "1-based page"          default(1)
// @Param       pageSize    query int    false "Page size, max 100"    default(10)
// @Success     200 {object} dto.ListRecordsResponse
// @Failure     400 {object} Envelope
// @Failure     401 {object} Envelope
// @Security    BearerAuth
// @Router      /records [get]
func ListRecords(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		q, err := dto.ToListQuery(
			c.QueryParam("dispenserNo"),
			c.QueryParam("paymentMode"),
			c.QueryParam("startDate"),
			c.QueryParam("endDate"),
			c.QueryParam("page"),
			c.QueryParam("pageSize"),
		)
		if err != nil {
			status, env := MapError(err)
			return writeJSON(c, status, env)
		}

		records, total, err := svc.ListRecords(c.Request().Context(), q)
		if err != nil {
			status, env := MapError(err)
			return writeJSON(c, status, env)
		}
		return writeJSON(c, http.StatusOK, dto.ListRecordsResponse{
			Success:    true,
			Records:    dto.FromModels(records),
			TotalCount: total,
			Page:       q.Page,
			PageSize:   q.PageSize,
		})
	}
}

// GetRecord — запись по идентификатору
// @Summary     Одна запись
// @Tags        records
// @Produce     json
// @Param       id path int true "Record ID"
// @Success     200 {object} dto.GetRecordResponse
// @Failure     404 {object} Envelope
// @Failure     401 {object} Envelope
// @Security    BearerAuth
// @Router      /records/{id} [get]
func GetRecord(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := dto.ParseRecordID(c.Param("id"))
		if err != nil {
			status, env := MapError(err)
			return writeJSON(c, status, env)
		}
		rec, err := svc.GetRecord(c.Request().Context(), id)
		if err != nil {
			status, env := MapError(err)
			return writeJSON(c, status, env)
		}
		return writeJSON(c, http.StatusOK, dto.GetRecordResponse{Success: true, Record: dto.FromModel(rec)})
	}
}

// CreateRecord — создание записи с необязательным платёжным подтверждением
// @Summary     Создать запись об отпуске
// @Tags        records
// @Accept      multipart/form-data
// @Produce     json
// @Param       dispenser_no   formData string true  "Dispenser number"
// @Param       volume         formData string true  "Volume dispensed, litres"
// @Param       payment_mode   formData string true  "cash/card/upi/other"
// @Param       vehicle_number formData string true  "Vehicle number"
// @Param       nozzle_no      formData string false "Nozzle number"
// @Param       fuel_grade     formData string false "Fuel grade"
// @Param       amount         formData string false "Monetary amount"
// @Param       payment_proof  formData file   false "Payment proof image"
// @Success     201 {object} dto.CreateRecordResponse
// @Failure     400 {object} Envelope
// @Failure     401 {object} Envelope
// @Security    BearerAuth
// @Router      /records [post]
func CreateRecord(svc *service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		form := dto.CreateRecordForm{
			DispenserNo:   c.FormValue("dispenser_no"),
			NozzleNo:      c.FormValue("nozzle_no"),
			FuelGrade:     c.FormValue("fuel_grade"),
			Volume:        c.FormValue("volume"),
			Amount:        c.FormValue("amount"),
			PaymentMode:   c.FormValue("payment_mode"),
			VehicleNumber: c.FormValue("vehicle_number"),
		}
		cmd, err := form.ToCommand()
		if err != nil {
			status, env := MapError(err)
			return writeJSON(c, status, env)
		}

		if fh, err := c.FormFile("payment_proof"); err == nil && fh != nil {
			if fh.Size > maxAttachmentBytes {
				return writeJSON(c, http.StatusBadRequest, fail("payment proof too large"))
			}
			src, err := fh.Open()
			if err != nil {
				return writeJSON(c, http.StatusBadRequest, fail("unreadable payment proof"))
			}
			data, err := io.ReadAll(io.LimitReader(src, maxAttachmentBytes+1))
			src.Close()
			if err != nil {
				return writeJSON(c, http.StatusBadRequest, fail("unreadable payment proof"))
			}
			if len(data) > maxAttachmentBytes {
				return writeJSON(c, http.StatusBadRequest, fail("payment proof too large"))
			}
			cmd.Attachment = data
			cmd.AttachmentName = fh.Filename
		}

		rec, err := svc.CreateRecord(c.Request().Context(), cmd)
		if err != nil {
			status, env := MapError(err)
			return writeJSON(c, status, env)
		}
		if id, ok := token.IdentityFromContext(c.Request().Context()); ok {
			log.Printf("records: %s created record %d (dispenser %s)", id.Subject, rec.ID, rec.DispenserNo)
		}

		msg := "record saved successfully"
		if rec.PaymentProofPath != nil {
			msg += " with image"
		}
		return writeJSON(c, http.StatusCreated, dto.CreateRecordResponse{
			Success: true,
			Message: msg,
			Record:  dto.FromModel(rec),
		})
	}
}

// DownloadRecordPDF — PDF-выгрузка одной записи
// @Summary     Скачать запись в PDF
// @Tags        records
// @Produce     application/pdf
// @Param       id path int true "Record ID"
// @Success     200 {file} file
// @Failure     404 {object} Envelope
// @Failure     401 {object} Envelope
// @Security    BearerAuth
// @Router      /records/{id}/download [get]
func DownloadRecordPDF(svc *service.Service, clock service.Clock) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := dto.ParseRecordID(c.Param("id"))
		if err != nil {
			status, env := MapError(err)
			return writeJSON(c, status, env)
		}
		rec, err := svc.GetRecord(c.Request().Context(), id)
		if err != nil {
			status, env := MapError(err)
			return writeJSON(c, status, env)
		}
		b, err := pdf.Render(rec)
		if err != nil {
			return writeJSON(c, http.StatusInternalServerError, fail("failed to render pdf"))
		}
		name := pdf.Filename(rec, clock.Now().UTC())
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
		return c.Blob(http.StatusOK, "application/pdf", b)
	}
}
