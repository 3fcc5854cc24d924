package services

import (
	"time"

	"alumni-portal/internal/identity"
	"alumni-portal/internal/kv"
	"alumni-portal/internal/models"
	"alumni-portal/internal/repository"
)

type Options struct {
	AllowAdminSignup bool
	// Now overrides the clock in tests.
	Now func() time.Time
}

type repos struct {
	users         *repository.Repository[models.User]
	alumni        *repository.Repository[models.Alumni]
	mentors       *repository.Repository[models.Mentor]
	problems      *repository.Repository[models.ProblemStatement]
	submissions   *repository.Repository[models.Submission]
	events        *repository.Repository[models.Event]
	registrations *repository.Repository[models.Registration]
	campaigns     *repository.Repository[models.Campaign]
	donations     *repository.Repository[models.Donation]
	announcements *repository.Repository[models.Announcement]
	forumPosts    *repository.Repository[models.ForumPost]
	requests      *repository.Repository[models.MentorshipRequest]
	pairs         *repository.Repository[models.MentorshipPair]
	connections   *repository.Repository[models.Connection]
	contacts      *repository.Repository[models.Contact]
}

func newRepos(store kv.Store) *repos {
	return &repos{
		users:         repository.New[models.User](store, models.KindUser),
		alumni:        repository.New[models.Alumni](store, models.KindAlumni),
		mentors:       repository.New[models.Mentor](store, models.KindMentor),
		problems:      repository.New[models.ProblemStatement](store, models.KindProblem),
		submissions:   repository.New[models.Submission](store, models.KindSubmission),
		events:        repository.New[models.Event](store, models.KindEvent),
		registrations: repository.New[models.Registration](store, models.KindRegistration),
		campaigns:     repository.New[models.Campaign](store, models.KindCampaign),
		donations:     repository.New[models.Donation](store, models.KindDonation),
		announcements: repository.New[models.Announcement](store, models.KindAnnouncement),
		forumPosts:    repository.New[models.ForumPost](store, models.KindForumPost),
		requests:      repository.New[models.MentorshipRequest](store, models.KindMentorshipRequest),
		pairs:         repository.New[models.MentorshipPair](store, models.KindMentorshipPair),
		connections:   repository.New[models.Connection](store, models.KindConnection),
		contacts:      repository.New[models.Contact](store, models.KindContact),
	}
}

// Services is every service of the portal wired to one store.
type Services struct {
	Policy        *Policy
	Users         *UserService
	Problems      *ProblemService
	Submissions   *SubmissionService
	Alumni        *AlumniService
	Mentors       *MentorService
	Events        *EventService
	Mentorship    *MentorshipService
	Donations     *DonationService
	Communication *CommunicationService
	Connections   *ConnectionService
	Contacts      *ContactService
	Analytics     *AnalyticsService
	Seed          *SeedService
}

func New(store kv.Store, idp identity.Provider, opts Options) *Services {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	r := newRepos(store)
	policy := NewPolicy(r.users)

	return &Services{
		Policy:        policy,
		Users:         &UserService{idp: idp, users: r.users, allowAdminSignup: opts.AllowAdminSignup, now: now},
		Problems:      &ProblemService{policy: policy, problems: r.problems, now: now},
		Submissions:   &SubmissionService{policy: policy, problems: r.problems, submissions: r.submissions, now: now},
		Alumni:        &AlumniService{policy: policy, alumni: r.alumni, now: now},
		Mentors:       &MentorService{mentors: r.mentors},
		Events:        &EventService{policy: policy, events: r.events, registrations: r.registrations, now: now},
		Mentorship:    &MentorshipService{policy: policy, requests: r.requests, pairs: r.pairs, mentors: r.mentors, alumni: r.alumni, now: now},
		Donations:     &DonationService{policy: policy, campaigns: r.campaigns, donations: r.donations, now: now},
		Communication: &CommunicationService{policy: policy, announcements: r.announcements, posts: r.forumPosts, now: now},
		Connections:   &ConnectionService{policy: policy, connections: r.connections, now: now},
		Contacts:      &ContactService{contacts: r.contacts, now: now},
		Analytics:     &AnalyticsService{policy: policy, r: r, now: now},
		Seed:          &SeedService{r: r},
	}
}
