package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/thethao247/backend/models"
	"github.com/thethao247/backend/repository"
)

type articlePDFData struct {
	Article    *models.Article
	AuthorName string
	Date       string
	Views      int64
}

// GenerateArticlePDF renders an article into a printable PDF using headless
// Chrome. Returns nil bytes when the article does not exist.
func GenerateArticlePDF(repo *repository.PDFRepository, articleID int64) ([]byte, error) {
	article, err := repo.GetArticleForPDF(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, nil
	}

	authorName := "Unknown"
	author, err := repo.GetAuthorForPDF(article.AuthorID)
	if err != nil {
		return nil, err
	}
	if author != nil {
		authorName = author.Name
	}

	formattedDate := "-"
	if !article.CreatedAt.IsZero() {
		formattedDate = article.CreatedAt.Format("02-Jan-2006")
	}

	tmpl, err := template.ParseFiles("templates/article_template.html")
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	data := articlePDFData{
		Article:    article,
		AuthorName: authorName,
		Date:       formattedDate,
		Views:      article.Views,
	}
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Georgia, 'Times New Roman', serif;
			font-size: 13px;
			margin: 0;
			padding: 0;
		}
		.article {
			page-break-inside: avoid;
		}
		</style>
		</head>
		<body><div class='article'>` + body.String() + `</div></body></html>`

	// Create temp HTML file
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "article_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	// Generate PDF with headless Chrome
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
