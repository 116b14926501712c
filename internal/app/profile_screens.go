package app

import (
	"context"
	"strings"

	"github.com/medichat/medichat-client/internal/domain"
)

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}

func printList(a *App, label string, items []string) {
	if len(items) == 0 {
		a.printf("  %-22s None\n", label+":")
		return
	}
	a.printf("  %-22s %s\n", label+":", strings.Join(items, ", "))
}

func profileScreen() *Screen {
	return &Screen{
		Title:        "Profile",
		RequiresAuth: true,
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("\n--- Your medical profile ---\n")

			p, err := a.deps.Profiles.Fetch(ctx)
			if err != nil {
				a.printf("No profile found yet.\n")
				return RouteProfileSetup, err
			}

			a.printf("Personal information:\n")
			a.printf("  %-22s %s\n", "Full name:", orNotProvided(p.PersonalInformation.FullName))
			a.printf("  %-22s %s\n", "Date of birth:", orNotProvided(p.PersonalInformation.DateOfBirth))
			a.printf("  %-22s %s\n", "Gender:", orNotProvided(p.PersonalInformation.Gender))
			a.printf("  %-22s %s\n", "Contact number:", orNotProvided(p.PersonalInformation.ContactNumber))
			a.printf("  %-22s %s\n", "Email:", orNotProvided(p.PersonalInformation.EmailAddress))
			a.printf("  %-22s %s\n", "Home address:", orNotProvided(p.PersonalInformation.HomeAddress))

			a.printf("Emergency contact:\n")
			a.printf("  %-22s %s\n", "Name:", orNotProvided(p.EmergencyContact.Name))
			a.printf("  %-22s %s\n", "Relationship:", orNotProvided(p.EmergencyContact.Relationship))
			a.printf("  %-22s %s\n", "Contact number:", orNotProvided(p.EmergencyContact.ContactNumber))

			a.printf("Medical history:\n")
			printList(a, "Chronic conditions", p.MedicalHistory.ChronicConditions)
			printList(a, "Allergies", p.MedicalHistory.Allergies)
			printList(a, "Current medications", p.MedicalHistory.CurrentMedications)

			a.printf("Lifestyle:\n")
			a.printf("  %-22s %s\n", "Smoking/alcohol:", orNotProvided(p.LifestyleInformation.SmokingAlcohol))
			a.printf("  %-22s %s\n", "Dietary preferences:", orNotProvided(p.LifestyleInformation.DietaryPreferences))

			a.printf("Consent:\n")
			consent := "No"
			if p.ConsentPreferences.ConsentDataUse {
				consent = "Yes"
			}
			a.printf("  %-22s %s\n", "Data use consent:", consent)
			a.printf("  %-22s %s\n", "Preferred contact:", orNotProvided(p.ConsentPreferences.PreferredCommunication))
			printList(a, "Notifications", p.ConsentPreferences.NotificationPreferences)

			line, _ := a.prompt("edit profile? (y/N) ")
			if strings.EqualFold(strings.TrimSpace(line), "y") {
				return RouteProfileSetup, nil
			}
			return RouteHome, nil
		},
	}
}

func profileSetupScreen() *Screen {
	return &Screen{
		Title:        "Profile setup",
		RequiresAuth: true,
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("\n--- Profile setup ---\n")
			a.printf("Empty answers keep fields blank; comma-separate list answers.\n")

			ask := func(label string) string {
				line, _ := a.prompt(label + ": ")
				return strings.TrimSpace(line)
			}
			askList := func(label string) []string {
				raw := ask(label)
				if raw == "" {
					return nil
				}
				var out []string
				for _, item := range strings.Split(raw, ",") {
					if item = strings.TrimSpace(item); item != "" {
						out = append(out, item)
					}
				}
				return out
			}

			p := &domain.Profile{
				PersonalInformation: domain.PersonalInformation{
					FullName:      ask("Full name"),
					DateOfBirth:   ask("Date of birth (YYYY-MM-DD)"),
					Gender:        strings.ToLower(ask("Gender (male/female/other)")),
					ContactNumber: ask("Contact number"),
					EmailAddress:  ask("Email address"),
					HomeAddress:   ask("Home address"),
				},
				EmergencyContact: domain.EmergencyContact{
					Name:          ask("Emergency contact name"),
					Relationship:  ask("Relationship"),
					ContactNumber: ask("Emergency contact number"),
				},
				MedicalHistory: domain.MedicalHistory{
					ChronicConditions:  askList("Chronic conditions"),
					Allergies:          askList("Allergies"),
					CurrentMedications: askList("Current medications"),
				},
				LifestyleInformation: domain.Lifestyle{
					SmokingAlcohol:     ask("Smoking/alcohol habits"),
					DietaryPreferences: ask("Dietary preferences"),
				},
				ConsentPreferences: domain.ConsentPreferences{
					ConsentDataUse:          strings.EqualFold(ask("Consent to data use? (yes/no)"), "yes"),
					PreferredCommunication:  ask("Preferred communication (Email/SMS/Call)"),
					NotificationPreferences: askList("Notifications (appointmentReminders, healthTips)"),
				},
			}

			if err := a.deps.Profiles.Save(ctx, p); err != nil {
				return RouteProfileSetup, err
			}
			a.printf("Profile saved successfully.\n")
			return RouteProfile, nil
		},
	}
}
