package payload_test

import (
	"net/http/httptest"
	"strings"

	"taskboard/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Payload", func() {
	Describe("SignupRequest", func() {
		var signupReq payload.SignupRequest

		BeforeEach(func() {
			signupReq = payload.SignupRequest{
				Username: "testuser",
				Password: "testpass",
			}
		})

		When("the request is valid", func() {
			It("should pass validation", func() {
				Expect(signupReq.Validate()).To(Succeed())
			})

			It("should map to credentials", func() {
				creds := signupReq.ToCredentials()
				Expect(creds.Username).To(Equal("testuser"))
				Expect(creds.Password).To(Equal("testpass"))
			})
		})

		When("the username is missing", func() {
			BeforeEach(func() {
				signupReq.Username = ""
			})

			It("should fail validation", func() {
				Expect(signupReq.Validate()).To(HaveOccurred())
			})
		})

		When("the password is shorter than six characters", func() {
			BeforeEach(func() {
				signupReq.Password = "short"
			})

			It("should fail validation", func() {
				Expect(signupReq.Validate()).To(HaveOccurred())
			})
		})
	})

	Describe("LoginRequest", func() {
		var loginReq payload.LoginRequest

		BeforeEach(func() {
			loginReq = payload.LoginRequest{
				Username: "testuser",
				Password: "pass",
			}
		})

		When("the request is valid", func() {
			It("should pass validation", func() {
				Expect(loginReq.Validate()).To(Succeed())
			})
		})

		When("the password is missing", func() {
			BeforeEach(func() {
				loginReq.Password = ""
			})

			It("should fail validation", func() {
				Expect(loginReq.Validate()).To(HaveOccurred())
			})
		})
	})

	Describe("CreateTaskRequest", func() {
		var createReq payload.CreateTaskRequest

		BeforeEach(func() {
			createReq = payload.CreateTaskRequest{
				Title:       "write report",
				Description: "quarterly numbers",
				Status:      "inprogress",
			}
		})

		When("the request is valid", func() {
			It("should pass validation", func() {
				Expect(createReq.Validate()).To(Succeed())
			})

			It("should map to a draft", func() {
				draft := createReq.ToDraft()
				Expect(draft.Title).To(Equal("write report"))
				Expect(draft.Status).To(Equal("inprogress"))
			})
		})

		When("the status is omitted", func() {
			BeforeEach(func() {
				createReq.Status = ""
			})

			It("should pass validation", func() {
				Expect(createReq.Validate()).To(Succeed())
			})
		})

		When("the title is missing", func() {
			BeforeEach(func() {
				createReq.Title = ""
			})

			It("should fail validation", func() {
				Expect(createReq.Validate()).To(HaveOccurred())
			})
		})

		When("the status is not a board column", func() {
			BeforeEach(func() {
				createReq.Status = "archived"
			})

			It("should fail validation", func() {
				Expect(createReq.Validate()).To(HaveOccurred())
			})
		})
	})

	Describe("UpdateTaskRequest", func() {
		var updateReq payload.UpdateTaskRequest

		When("a single field is supplied", func() {
			BeforeEach(func() {
				status := "done"
				updateReq = payload.UpdateTaskRequest{Status: &status}
			})

			It("should pass validation", func() {
				Expect(updateReq.Validate()).To(Succeed())
			})

			It("should map only the supplied field", func() {
				patch := updateReq.ToPatch()
				Expect(patch.Status).NotTo(BeNil())
				Expect(*patch.Status).To(Equal("done"))
				Expect(patch.Title).To(BeNil())
				Expect(patch.Description).To(BeNil())
				Expect(patch.Completed).To(BeNil())
			})
		})

		When("no fields are supplied", func() {
			BeforeEach(func() {
				updateReq = payload.UpdateTaskRequest{}
			})

			It("should fail validation", func() {
				Expect(updateReq.Validate()).To(MatchError(ContainSubstring("at least one field")))
			})
		})

		When("the title is supplied but empty", func() {
			BeforeEach(func() {
				title := ""
				updateReq = payload.UpdateTaskRequest{Title: &title}
			})

			It("should fail validation", func() {
				Expect(updateReq.Validate()).To(HaveOccurred())
			})
		})

		When("the status is not a board column", func() {
			BeforeEach(func() {
				status := "archived"
				updateReq = payload.UpdateTaskRequest{Status: &status}
			})

			It("should fail validation", func() {
				Expect(updateReq.Validate()).To(HaveOccurred())
			})
		})
	})

	Describe("DecodeValidator", func() {
		var validator payload.DecodeValidator

		BeforeEach(func() {
			validator = payload.DecodeValidator{}
		})

		When("the body is valid json and passes validation", func() {
			It("should decode into the target", func() {
				body := strings.NewReader(`{"username":"testuser","password":"testpass"}`)
				req := httptest.NewRequest("POST", "/auth/signup", body)

				var signupReq payload.SignupRequest
				err := validator.DecodeJSONPayload(req, &signupReq)
				Expect(err).NotTo(HaveOccurred())
				Expect(signupReq.Username).To(Equal("testuser"))
			})
		})

		When("the body contains unknown fields", func() {
			It("should return a decoding error", func() {
				body := strings.NewReader(`{"username":"testuser","password":"testpass","role":"admin"}`)
				req := httptest.NewRequest("POST", "/auth/signup", body)

				var signupReq payload.SignupRequest
				err := validator.DecodeJSONPayload(req, &signupReq)
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})

		When("the body fails validation", func() {
			It("should return a validation error", func() {
				body := strings.NewReader(`{"username":"testuser","password":"short"}`)
				req := httptest.NewRequest("POST", "/auth/signup", body)

				var signupReq payload.SignupRequest
				err := validator.DecodeJSONPayload(req, &signupReq)
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
			})
		})
	})
})
