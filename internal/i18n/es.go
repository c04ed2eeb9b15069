package i18n

import "fmt"

var spanish = map[string]entry{
	"violations.allTagLevelsRequired": text("Todas las etiquetas son obligatorias"),
	"violations.autoReportedRejectedExpense": func(a args) string {
		return fmt.Sprintf("%s rechazó este gasto con el comentario %q", a.str("rejectedBy"), a.str("rejectReason"))
	},
	"violations.billableExpense": text("La opción facturable ya no es válida"),
	"violations.cashExpenseWithNoReceipt": func(a args) string {
		if limit := a.str("formattedLimit"); limit != "" {
			return "Recibo obligatorio para importes mayores de " + limit
		}

		return "Recibo obligatorio"
	},
	"violations.categoryOutOfPolicy": text("La categoría ya no es válida"),
	"violations.conversionSurcharge": func(a args) string {
		return "Recargo por conversión aplicado del " + a.num("surcharge") + "%"
	},
	"violations.customUnitOutOfPolicy": text("La tasa no es válida para este espacio de trabajo"),
	"violations.duplicatedTransaction": text("Duplicado"),
	"violations.fieldRequired":         text("Los campos del informe son obligatorios"),
	"violations.futureDate":            text("Fecha futura no permitida"),
	"violations.invoiceMarkup": func(a args) string {
		return "Incrementado un " + a.num("invoiceMarkup") + "%"
	},
	"violations.maxAge": func(a args) string {
		return "Fecha de más de " + a.num("maxAge") + " días"
	},
	"violations.missingCategory": text("Falta categoría"),
	"violations.missingComment":  text("Descripción obligatoria para la categoría seleccionada"),
	"violations.missingTag": func(a args) string {
		return "Falta " + orDefault(a.str("tagName"), "etiqueta")
	},
	"violations.modifiedDate": text("La fecha difiere del recibo escaneado"),
	"violations.overLimit": func(a args) string {
		return "Importe supera el límite de " + a.str("formattedLimit") + "/persona"
	},
	"violations.receiptRequired": func(a args) string {
		limit := a.str("formattedLimit")
		if limit == "" {
			return "Recibo obligatorio"
		}

		if a.str("category") != "" {
			return "Recibo obligatorio para importes mayores de " + limit + " según el límite de la categoría"
		}

		return "Recibo obligatorio para importes mayores de " + limit
	},
	"violations.smartscanFailed": func(a args) string {
		if a.boolean("canEdit") {
			return "No se pudo escanear el recibo. Introduce los datos manualmente."
		}

		return "No se pudo escanear el recibo."
	},
	"violations.someTagLevelsRequired": func(a args) string {
		return "Falta " + orDefault(a.str("tagName"), "etiqueta")
	},
	"violations.tagOutOfPolicy": func(a args) string {
		if name := a.str("tagName"); name != "" {
			return name + " ya no es válida"
		}

		return "La etiqueta ya no es válida"
	},
	"violations.taxAmountChanged": text("El impuesto fue modificado"),
	"violations.taxOutOfPolicy": func(a args) string {
		return orDefault(a.str("taxName"), "El impuesto") + " ya no es válido"
	},
	"violations.taxRateChanged": text("La tasa de impuesto fue modificada"),
	"violations.taxRequired":    text("Falta la tasa de impuesto"),
	"violations.hold":           text("Este gasto está retenido"),
}
