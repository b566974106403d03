package skills

// technicalSkills is the built-in taxonomy. Some terms appear in several categories.
var technicalSkills = []Category{
	{Name: "programming_languages", Terms: []string{
		"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php", "swift", "kotlin",
		"go", "rust", "scala", "perl", "r", "matlab", "bash", "shell", "powershell", "dart", "groovy",
		"lua", "haskell", "clojure", "erlang", "fortran", "cobol", "assembly", "objective-c", "vba",
		"julia", "lisp", "prolog", "scheme", "f#", "abap", "apex", "crystal", "elixir", "elm", "ocaml",
		"racket", "solidity", "sql", "plsql", "tsql", "verilog", "vhdl",
	}},
	{Name: "web_development", Terms: []string{
		"html", "css", "sass", "less", "bootstrap", "tailwind", "material-ui", "react", "angular",
		"vue", "svelte", "jquery", "next.js", "gatsby", "nuxt.js", "express", "node.js", "deno",
		"django", "flask", "fastapi", "spring", "asp.net", "laravel", "symfony", "ruby on rails",
		"graphql", "rest api", "soap", "webpack", "babel", "vite", "parcel", "pwa", "web components",
		"webrtc", "websocket", "web assembly", "wasm", "service workers", "progressive web apps",
		"responsive design", "web accessibility", "wcag", "aria", "seo", "semantic html", "css grid",
		"flexbox", "css animations", "web performance", "web security", "oauth", "jwt", "cors",
	}},
	{Name: "databases", Terms: []string{
		"sql", "mysql", "postgresql", "mongodb", "sqlite", "oracle", "sql server", "mariadb",
		"dynamodb", "cassandra", "redis", "neo4j", "couchdb", "firebase", "supabase", "elasticsearch",
		"nosql", "orm", "sequelize", "mongoose", "prisma", "typeorm", "database design", "er diagrams",
		"database normalization", "acid", "transactions", "indexing", "query optimization",
		"data modeling", "etl", "data warehousing", "olap", "oltp", "database administration", "dba",
		"database migration", "database replication", "database sharding", "database backup",
		"database recovery", "database security",
	}},
	{Name: "devops", Terms: []string{
		"docker", "kubernetes", "aws", "azure", "gcp", "terraform", "ansible", "jenkins", "gitlab ci",
		"github actions", "circleci", "travis ci", "nginx", "apache", "linux", "unix", "windows server",
		"ci/cd", "devops", "sre", "infrastructure as code", "monitoring", "logging", "prometheus",
		"grafana", "elk stack", "logstash", "kibana", "cloud computing", "serverless", "lambda",
		"microservices", "service mesh", "istio", "envoy", "load balancing", "auto scaling",
		"high availability", "fault tolerance", "disaster recovery", "configuration management",
		"puppet", "chef", "salt", "vagrant", "virtualization", "vmware", "hypervisor", "containers",
		"orchestration", "helm", "openshift", "rancher", "cloud native",
	}},
	{Name: "data_science", Terms: []string{
		"machine learning", "deep learning", "artificial intelligence", "ai", "ml", "dl",
		"data science", "data analysis", "data visualization", "data mining", "data engineering",
		"big data", "statistics", "pandas", "numpy", "scipy", "matplotlib", "seaborn", "scikit-learn",
		"tensorflow", "pytorch", "keras", "opencv", "nlp", "natural language processing",
		"computer vision", "neural networks", "regression", "classification", "clustering",
		"reinforcement learning", "time series", "forecasting", "feature engineering",
		"dimensionality reduction", "pca", "t-sne", "data preprocessing", "data cleaning",
		"data transformation", "data augmentation", "transfer learning", "ensemble methods",
		"random forest", "gradient boosting", "xgboost", "lightgbm", "catboost", "decision trees",
		"svm", "support vector machines", "knn", "k-nearest neighbors", "naive bayes",
		"logistic regression", "linear regression", "a/b testing", "hypothesis testing",
		"bayesian statistics", "markov chains", "monte carlo", "recommender systems",
		"collaborative filtering", "content-based filtering", "anomaly detection", "sentiment analysis",
		"topic modeling", "word embeddings", "word2vec", "glove", "bert", "transformers", "gpt", "llm",
		"large language models", "generative ai", "gan", "generative adversarial networks",
		"autoencoder", "vae", "variational autoencoder", "cnn", "convolutional neural networks", "rnn",
		"recurrent neural networks", "lstm", "long short-term memory", "gru", "gated recurrent units",
		"attention mechanism", "transformer architecture",
	}},
	{Name: "mobile_development", Terms: []string{
		"android", "ios", "swift", "kotlin", "react native", "flutter", "xamarin", "ionic", "cordova",
		"objective-c", "mobile development", "app development", "pwa", "progressive web apps",
		"mobile ui", "mobile ux", "responsive design", "mobile testing", "app store optimization",
		"aso", "mobile analytics", "push notifications", "geolocation", "offline storage",
		"mobile security", "mobile authentication", "biometrics", "face id", "touch id",
		"mobile payments", "in-app purchases", "mobile ads", "admob", "mobile backend", "firebase",
		"realm", "coredata", "room database", "jetpack compose", "swiftui", "material design",
		"human interface guidelines", "hig", "app lifecycle", "mobile performance", "mobile debugging",
		"mobile testing", "ui testing", "integration testing", "mobile ci/cd",
	}},
	{Name: "tools", Terms: []string{
		"git", "github", "gitlab", "bitbucket", "jira", "confluence", "trello", "slack", "notion",
		"figma", "sketch", "adobe xd", "photoshop", "illustrator", "visual studio", "vs code",
		"intellij", "pycharm", "eclipse", "postman", "insomnia", "swagger", "openapi", "terminal",
		"command line", "bash", "powershell", "zsh", "vim", "emacs", "sublime text", "atom", "jupyter",
		"jupyter notebook", "jupyter lab", "colab", "google colab", "anaconda", "conda", "virtualenv",
		"venv", "docker", "kubernetes", "aws", "azure", "gcp", "heroku", "netlify", "vercel",
		"digital ocean", "linode", "vultr", "aws s3", "aws ec2", "aws lambda", "aws rds",
		"aws dynamodb", "aws sqs", "aws sns", "azure functions", "azure storage", "azure cosmos db",
		"gcp cloud functions", "gcp cloud storage", "gcp bigquery", "gcp cloud run", "gcp cloud sql",
		"firebase", "firebase auth", "firebase firestore", "firebase realtime database",
		"firebase storage", "firebase hosting", "firebase functions", "supabase", "auth0", "okta",
		"oauth", "openid connect", "saml", "ldap", "active directory", "sso", "single sign-on",
	}},
	{Name: "soft_skills", Terms: []string{
		"communication", "teamwork", "leadership", "problem solving", "critical thinking",
		"time management", "project management", "agile", "scrum", "kanban", "waterfall", "lean",
		"six sigma", "presentation", "public speaking", "negotiation", "conflict resolution",
		"decision making", "adaptability", "flexibility", "creativity", "innovation",
		"emotional intelligence", "empathy", "interpersonal skills", "customer service",
		"client management", "stakeholder management", "mentoring", "coaching", "training",
		"onboarding", "documentation", "technical writing", "research", "analysis",
		"strategic thinking", "business acumen", "entrepreneurship", "self-motivation", "initiative",
		"attention to detail", "organization", "multitasking", "prioritization", "stress management",
		"resilience", "work ethic", "professionalism", "ethics", "integrity", "accountability",
		"responsibility", "reliability", "punctuality", "cultural awareness", "diversity", "inclusion",
		"remote work", "virtual collaboration", "cross-functional collaboration",
		"interdisciplinary collaboration", "continuous learning", "growth mindset",
	}},
	{Name: "cybersecurity", Terms: []string{
		"cybersecurity", "information security", "network security", "application security",
		"cloud security", "security architecture", "security engineering", "security operations",
		"security assessment", "penetration testing", "vulnerability assessment", "threat modeling",
		"risk assessment", "security compliance", "security governance", "security policies",
		"security standards", "security frameworks", "iso 27001", "nist", "pci dss", "hipaa", "gdpr",
		"ccpa", "soc 2", "security auditing", "security monitoring", "siem",
		"security information and event management", "intrusion detection", "intrusion prevention",
		"ids", "ips", "firewall", "waf", "web application firewall", "endpoint security", "antivirus",
		"anti-malware", "encryption", "cryptography", "hashing", "digital signatures", "pki",
		"public key infrastructure", "vpn", "virtual private network", "ssl", "tls",
		"secure sockets layer", "transport layer security", "authentication", "authorization",
		"access control", "identity management", "iam", "single sign-on", "sso",
		"multi-factor authentication", "mfa", "two-factor authentication", "2fa", "biometrics",
		"security awareness", "security training", "incident response", "digital forensics",
		"malware analysis", "reverse engineering", "ethical hacking", "red team", "blue team",
		"purple team", "osint", "open source intelligence", "threat intelligence",
		"security operations center", "soc", "security architecture", "zero trust", "devsecops",
	}},
}
