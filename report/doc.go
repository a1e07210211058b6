// SPDX-License-Identifier: MIT

// Package report presents a solved system. Collect gathers everything a
// report needs from a solver into a Result, which can then be rendered as
// plain text (Text), an XLSX workbook (Workbook, WriteXLSX) or a one-page
// PDF summary (WritePDF).
package report
