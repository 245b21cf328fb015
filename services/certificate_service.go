package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/kmuriithi/skillswap/configs"
	"github.com/kmuriithi/skillswap/database"
	"github.com/kmuriithi/skillswap/models"
)

// GenerateMasteryCertificate renders and stores the certificate backing a
// successful mastery claim. Runs detached from the claim request; any failure
// is logged and the claim itself stands.
func GenerateMasteryCertificate(sessionID, learnerID uuid.UUID) {
	var session models.Session
	if err := database.DB.Preload("Teacher").First(&session, "id = ?", sessionID).Error; err != nil {
		log.Printf("🔥 Certificate: session %s not found: %v", sessionID, err)
		return
	}
	var learner models.User
	if err := database.DB.First(&learner, "id = ?", learnerID).Error; err != nil {
		log.Printf("🔥 Certificate: learner %s not found: %v", learnerID, err)
		return
	}

	var existing models.Certificate
	if err := database.DB.Where("learner_id = ? AND session_id = ?", learnerID, sessionID).First(&existing).Error; err == nil {
		return
	}

	title := fmt.Sprintf("%s with %s", session.Skill, session.Teacher.FullName)

	htmlData, err := renderCertificateHTML(learner.FullName, session.Teacher.FullName, session.Skill)
	if err != nil {
		log.Printf("🔥 Failed to render certificate HTML: %v", err)
		return
	}

	pdfBytes, err := printPDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate PDF: %v", err)
		return
	}

	documentURL, err := uploadCertificate(pdfBytes, learnerID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload certificate: %v", err)
		return
	}

	cert := models.Certificate{
		LearnerID:   learnerID,
		TeacherID:   session.TeacherID,
		SessionID:   sessionID,
		Skill:       session.Skill,
		Title:       title,
		IssuedAt:    time.Now(),
		DocumentURL: documentURL,
	}
	if err := database.DB.Create(&cert).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for learner %s: %v", learnerID, err)
		return
	}
	log.Printf("✅ Issued certificate '%s' to learner %s.", title, learnerID)
}

func renderCertificateHTML(learnerName, teacherName, skill string) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		LearnerName string
		TeacherName string
		Skill       string
		IssuedDate  string
	}{
		LearnerName: learnerName,
		TeacherName: teacherName,
		Skill:       skill,
		IssuedDate:  time.Now().Format("January 2, 2006"),
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func printPDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadCertificate(fileBytes []byte, learnerID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", learnerID, uuid.New().String()),
		Folder:       "skillswap_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}
	return uploadResult.SecureURL, nil
}
