package export

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/shopspring/decimal"

	"invoicedesk/internal/entity"
)

// Tally's import format: one ENVELOPE carrying a TALLYMESSAGE per voucher.
// Field order matters to the importer, so the structs keep the canonical
// element sequence.

type tallyEnvelope struct {
	XMLName xml.Name    `xml:"ENVELOPE"`
	Header  tallyHeader `xml:"HEADER"`
	Body    tallyBody   `xml:"BODY"`
}

type tallyHeader struct {
	TallyRequest string `xml:"TALLYREQUEST"`
}

type tallyBody struct {
	ImportData tallyImportData `xml:"IMPORTDATA"`
}

type tallyImportData struct {
	RequestDesc tallyRequestDesc `xml:"REQUESTDESC"`
	RequestData tallyRequestData `xml:"REQUESTDATA"`
}

type tallyRequestDesc struct {
	ReportName string `xml:"REPORTNAME"`
}

type tallyRequestData struct {
	Messages []tallyMessage `xml:"TALLYMESSAGE"`
}

type tallyMessage struct {
	XMLNSUDF string       `xml:"xmlns:UDF,attr"`
	Voucher  tallyVoucher `xml:"VOUCHER"`
}

type tallyVoucher struct {
	VchType            string            `xml:"VCHTYPE,attr"`
	Action             string            `xml:"ACTION,attr"`
	Date               string            `xml:"DATE"`
	EffectiveDate      string            `xml:"EFFECTIVEDATE"`
	VoucherNumber      string            `xml:"VOUCHERNUMBER"`
	PartyLedgerName    string            `xml:"PARTYLEDGERNAME"`
	BasicBasePartyName string            `xml:"BASICBASEPARTYNAME"`
	PartyGSTIN         string            `xml:"PARTYGSTIN,omitempty"`
	LedgerEntries      []tallyLedgerLine `xml:"ALLLEDGERENTRIES.LIST"`
	InventoryEntries   []tallyStockLine  `xml:"ALLINVENTORYENTRIES.LIST"`
}

type tallyLedgerLine struct {
	LedgerName string `xml:"LEDGERNAME"`
	Amount     string `xml:"AMOUNT"`
}

type tallyStockLine struct {
	StockItemName string `xml:"STOCKITEMNAME"`
	Rate          string `xml:"RATE"`
	ActualQty     string `xml:"ACTUALQTY"`
	Amount        string `xml:"AMOUNT"`
}

// BuildTallyXML renders purchase vouchers for the given invoices.
func BuildTallyXML(invs []*entity.Invoice) ([]byte, error) {
	env := tallyEnvelope{
		Header: tallyHeader{TallyRequest: "Import Data"},
		Body: tallyBody{
			ImportData: tallyImportData{
				RequestDesc: tallyRequestDesc{ReportName: "Vouchers"},
			},
		},
	}
	for _, inv := range invs {
		env.Body.ImportData.RequestData.Messages = append(
			env.Body.ImportData.RequestData.Messages, voucherMessage(inv))
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(env); err != nil {
		return nil, fmt.Errorf("tally xml encode: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func voucherMessage(inv *entity.Invoice) tallyMessage {
	party := inv.VendorName
	if party == "" {
		party = "Unknown Vendor"
	}
	date := inv.InvoiceDate.Format("20060102")

	tax := inv.CGST.Add(inv.SGST).Add(inv.Cess)
	ledgers := []tallyLedgerLine{
		{LedgerName: party, Amount: inv.TotalAmount.Neg().StringFixed(2)},
		{LedgerName: "Purchase Account", Amount: inv.Subtotal.StringFixed(2)},
	}
	if tax.GreaterThan(decimal.Zero) {
		ledgers = append(ledgers, tallyLedgerLine{
			LedgerName: "GST Input", Amount: tax.StringFixed(2),
		})
	}

	stock := make([]tallyStockLine, 0, len(inv.Items))
	for _, it := range inv.Items {
		stock = append(stock, tallyStockLine{
			StockItemName: it.Description,
			Rate:          fmt.Sprintf("%s/%s", it.UnitPrice.StringFixed(2), it.Unit),
			ActualQty:     fmt.Sprintf("%s %s", it.Quantity.String(), it.Unit),
			Amount:        it.Quantity.Mul(it.UnitPrice).StringFixed(2),
		})
	}

	return tallyMessage{
		XMLNSUDF: "TallyUDF",
		Voucher: tallyVoucher{
			VchType:            "Purchase",
			Action:             "Create",
			Date:               date,
			EffectiveDate:      date,
			VoucherNumber:      inv.InvoiceNumber,
			PartyLedgerName:    party,
			BasicBasePartyName: party,
			PartyGSTIN:         inv.VendorGSTIN,
			LedgerEntries:      ledgers,
			InventoryEntries:   stock,
		},
	}
}
